//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/warmline/warmline-backend/internal/adapter/postgres"
	artifactrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/artifact"
	contactrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/contact"
	suggestionrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/suggestion"
	"github.com/warmline/warmline-backend/internal/adapter/postgres/testhelper"
	"github.com/warmline/warmline-backend/internal/app"
	authpkg "github.com/warmline/warmline-backend/internal/auth"
	"github.com/warmline/warmline-backend/internal/config"
	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/internal/service/pipeline"
	"github.com/warmline/warmline-backend/internal/service/suggest"
	"github.com/warmline/warmline-backend/internal/transport/middleware"
	"github.com/warmline/warmline-backend/internal/transport/rest"
)

const webhookSecret = "test-webhook-secret"

// stubIntelligence replaces the real provider in tests. The entries it
// returns are set per test before ingesting.
type stubIntelligence struct {
	mu      sync.Mutex
	entries []domain.SuggestionEntry
	err     error
}

func (s *stubIntelligence) SetEntries(entries []domain.SuggestionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.err = nil
}

func (s *stubIntelligence) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubIntelligence) ProposeUpdates(_ context.Context, _ *domain.Artifact, _ *domain.Contact) ([]domain.SuggestionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.SuggestionEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL        string
	Client     *http.Client
	Pool       *pgxpool.Pool
	Intel      *stubIntelligence
	jwt        *authpkg.JWTManager
	dispatcher *app.Dispatcher
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The intelligence provider
// is stubbed; everything else is the production wiring.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	artifacts := artifactrepo.New(pool)
	contacts := contactrepo.New(pool)
	suggestions := suggestionrepo.New(pool)

	intel := &stubIntelligence{}

	suggestSvc := suggest.NewService(logger, artifacts, contacts, suggestions, intel, txm, 0)
	dispatcher := app.NewDispatcher(suggestSvc, 10*time.Second, logger)
	pipelineSvc := pipeline.NewService(logger, artifacts, contacts, suggestions, dispatcher)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer")

	handler := rest.NewRouter(rest.RouterDeps{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Auth:        middleware.Auth(jwtMgr),
		WebhookAuth: middleware.WebhookAuth(webhookSecret),
		Artifacts:   rest.NewArtifactHandler(pipelineSvc, logger),
		Suggestions: rest.NewSuggestionHandler(suggestSvc, logger),
		Health:      rest.NewHealthHandler(pool, "test-version"),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		dispatcher.Wait()
	})

	return &testServer{
		URL:        srv.URL,
		Client:     srv.Client(),
		Pool:       pool,
		Intel:      intel,
		jwt:        jwtMgr,
		dispatcher: dispatcher,
	}
}

// tokenFor mints a bearer token for the given user.
func (ts *testServer) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(userID, 15*time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doJSON sends a request with an optional JSON body and bearer token and
// returns the status code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	// Auth failures are plain text; everything else is JSON.
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// doWebhook sends a transcription worker callback with the shared secret.
func (ts *testServer) doWebhook(t *testing.T, path string, body any, secret string) (int, map[string]any) {
	t.Helper()

	raw := []byte("{}")
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal webhook body: %v", err)
		}
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("create webhook request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Webhook-Token", secret)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do webhook request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// ingestArtifact creates an artifact through the API and returns its ID.
func (ts *testServer) ingestArtifact(t *testing.T, token string, contactID uuid.UUID, typ, content string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/v1/artifacts", map[string]any{
		"contact_id": contactID.String(),
		"type":       typ,
		"content":    content,
	}, token)
	if status != http.StatusCreated {
		t.Fatalf("ingest artifact: status %d, body %v", status, body)
	}

	id, ok := body["id"].(string)
	if !ok {
		t.Fatalf("ingest artifact: no id in response: %v", body)
	}
	return id
}

// waitForSuggestion polls the API until a pending suggestion for the
// artifact appears, or fails the test after the deadline.
func (ts *testServer) waitForSuggestion(t *testing.T, token, artifactID string) map[string]any {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		status, body := ts.doJSON(t, http.MethodGet, "/api/v1/suggestions?status=pending", nil, token)
		if status == http.StatusOK {
			if list, ok := body["suggestions"].([]any); ok {
				for _, item := range list {
					s, ok := item.(map[string]any)
					if !ok {
						continue
					}
					if s["artifact_id"] == artifactID {
						return s
					}
				}
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("no suggestion appeared for artifact %s", artifactID)
	return nil
}

// getArtifact fetches an artifact through the API.
func (ts *testServer) getArtifact(t *testing.T, token, artifactID string) map[string]any {
	t.Helper()
	status, body := ts.doJSON(t, http.MethodGet, "/api/v1/artifacts/"+artifactID, nil, token)
	if status != http.StatusOK {
		t.Fatalf("get artifact %s: status %d, body %v", artifactID, status, body)
	}
	return body
}

// waitForParsingStatus polls until the artifact reaches the given parsing
// status.
func (ts *testServer) waitForParsingStatus(t *testing.T, token, artifactID, want string) map[string]any {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	var last map[string]any
	for time.Now().Before(deadline) {
		last = ts.getArtifact(t, token, artifactID)
		if last["parsing_status"] == want {
			return last
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("artifact %s never reached parsing status %q, last: %v", artifactID, want, last)
	return nil
}
