// Package claude adapts the Anthropic API as the intelligence capability
// that turns a parsed artifact into candidate contact updates.
package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/warmline/warmline-backend/internal/config"
	"github.com/warmline/warmline-backend/internal/domain"
)

// Client calls the Anthropic Messages API and decodes the response into
// suggestion entries. Failures wrap domain.ErrUpstream so callers can
// record them on the artifact row instead of propagating them.
type Client struct {
	api anthropic.Client
	cfg config.IntelligenceConfig
	log *slog.Logger
}

// New creates a new intelligence client.
func New(cfg config.IntelligenceConfig, log *slog.Logger) *Client {
	return &Client{
		api: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		cfg: cfg,
		log: log.With("provider", "claude"),
	}
}

// wireEntry is the JSON schema the model is instructed to produce.
type wireEntry struct {
	FieldPath      string  `json:"field_path"`
	Action         string  `json:"action"`
	SuggestedValue any     `json:"suggested_value"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning"`
}

type wireResponse struct {
	Suggestions []wireEntry `json:"suggestions"`
}

// ProposeUpdates sends the artifact content plus the contact's current
// profile to the model and returns zero or more candidate entries.
// Current-value snapshots are NOT filled here; the generation service
// reads them from the live profile.
func (c *Client) ProposeUpdates(ctx context.Context, artifact *domain.Artifact, contact *domain.Contact) ([]domain.SuggestionEntry, error) {
	profileJSON, err := json.MarshalIndent(contact.Profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	prompt := buildPrompt(artifact, contact.DisplayName, string(profileJSON))

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: c.cfg.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("messages api for artifact %s: %v: %w", artifact.ID, err, domain.ErrUpstream)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty response for artifact %s: %w", artifact.ID, domain.ErrUpstream)
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %v: %w", artifact.ID, err, domain.ErrUpstream)
	}

	var resp wireResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("decode response for artifact %s: %v: %w", artifact.ID, err, domain.ErrUpstream)
	}

	entries, err := toDomainEntries(resp.Suggestions)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "updates proposed",
		slog.String("artifact_id", artifact.ID.String()),
		slog.Int("entries", len(entries)),
	)
	return entries, nil
}

// toDomainEntries validates and converts wire entries. An entry with no
// field path fails the whole batch rather than being silently dropped;
// confidences are clamped to [0,1].
func toDomainEntries(wire []wireEntry) ([]domain.SuggestionEntry, error) {
	entries := make([]domain.SuggestionEntry, 0, len(wire))
	for i, w := range wire {
		if strings.TrimSpace(w.FieldPath) == "" {
			return nil, domain.NewValidationError(
				fmt.Sprintf("suggestions[%d].field_path", i), "required")
		}
		action := domain.SuggestionAction(w.Action)
		if !action.IsValid() {
			return nil, domain.NewValidationError(
				fmt.Sprintf("suggestions[%d].action", i), fmt.Sprintf("unknown action %q", w.Action))
		}
		entries = append(entries, domain.SuggestionEntry{
			FieldPath:      w.FieldPath,
			Action:         action,
			SuggestedValue: w.SuggestedValue,
			Confidence:     clamp01(w.Confidence),
			Reasoning:      w.Reasoning,
		})
	}
	return entries, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// buildPrompt creates the model prompt for a single artifact.
func buildPrompt(artifact *domain.Artifact, contactName, profileJSON string) string {
	return fmt.Sprintf(`You are an assistant that maintains a personal-relationship CRM.

A new %s about the contact %q was captured:

---
%s
---

The contact's current profile document:
%s

Propose structured updates to the profile. Output ONLY a valid JSON object matching this exact schema:
{
  "suggestions": [
    {
      "field_path": "<dot/index path into the profile, e.g. professional_context.title or family_members.0.name>",
      "action": "<add|update|remove>",
      "suggested_value": <JSON value; omit for remove>,
      "confidence": <0.0-1.0>,
      "reasoning": "<one short sentence citing the source text>"
    }
  ]
}

Rules:
- Only propose updates supported by the captured text
- Use "update" only for paths that already exist in the profile; otherwise "add"
- Prefer specific nested paths over replacing whole objects
- Return {"suggestions": []} when nothing relevant was mentioned
- Output ONLY the JSON, no markdown, no explanations`,
		artifact.Type, contactName, artifact.Content, profileJSON)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	out := s[start : end+1]
	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return out, nil
}
