package reconcile

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/warmline/warmline-backend/internal/domain"
)

// Instruction is one field-level edit to apply to a profile document.
// Snapshot is the value observed at suggestion-generation time; the merge
// aborts with domain.ErrMergeConflict when the live value has diverged
// from it.
type Instruction struct {
	Path     string
	Action   domain.SuggestionAction
	Snapshot any
	NewValue any
}

// Merge applies one instruction to the document and returns the resulting
// document. The input document is never mutated; on error the returned
// document is nil and the caller's copy is untouched.
//
// Semantics per action:
//   - add: appends to an existing array, otherwise creates the key;
//     intermediate containers are created for missing path prefixes.
//   - update: replaces the value at an existing path.
//   - remove: deletes the key, or splices the array element shifting
//     subsequent indices.
//
// update/remove on a missing path fail with domain.ErrPathNotFound.
func Merge(doc map[string]any, instr Instruction) (map[string]any, error) {
	if !instr.Action.IsValid() {
		return nil, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", instr.Action))
	}

	segs, err := ParsePath(instr.Path)
	if err != nil {
		return nil, err
	}

	work, err := cloneDoc(doc)
	if err != nil {
		return nil, err
	}

	live, _ := lookup(work, segs)
	if !Equal(live, instr.Snapshot) {
		return nil, fmt.Errorf("field %q diverged from snapshot: %w", instr.Path, domain.ErrMergeConflict)
	}

	val, err := normalize(instr.NewValue)
	if err != nil {
		return nil, err
	}

	var root any
	switch instr.Action {
	case domain.SuggestionActionAdd:
		root, err = applyAdd(work, segs, val)
	case domain.SuggestionActionUpdate:
		root, err = applyUpdate(work, segs, val)
	case domain.SuggestionActionRemove:
		root, err = applyRemove(work, segs)
	}
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", instr.Path, err)
	}

	out, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q: document root is not an object", instr.Path)
	}
	return out, nil
}

// Lookup resolves a field path against a document and returns the value
// and whether it exists. Used by the generator to snapshot current values.
func Lookup(doc map[string]any, path string) (any, bool, error) {
	segs, err := ParsePath(path)
	if err != nil {
		return nil, false, err
	}
	v, ok := lookup(doc, segs)
	return v, ok, nil
}

// Equal reports deep equality of two JSON-compatible values. Both sides are
// normalized through JSON encoding first so typed Go values (ints, structs)
// and decoded JSON (float64, map[string]any) compare as their wire form.
func Equal(a, b any) bool {
	na, err := normalize(a)
	if err != nil {
		return false
	}
	nb, err := normalize(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(na, nb)
}

func lookup(node any, segs []Segment) (any, bool) {
	cur := node
	for _, seg := range segs {
		switch n := cur.(type) {
		case map[string]any:
			v, ok := n[seg.Key]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			if !seg.IsIndex || seg.Index >= len(n) {
				return nil, false
			}
			cur = n[seg.Index]
		default:
			return nil, false
		}
	}
	return cur, true
}

func applyAdd(node any, segs []Segment, val any) (any, error) {
	seg := segs[0]
	if node == nil {
		node = emptyContainer(seg)
	}

	switch n := node.(type) {
	case map[string]any:
		if len(segs) == 1 {
			existing, ok := n[seg.Key]
			if !ok {
				n[seg.Key] = val
				return n, nil
			}
			if arr, isArr := existing.([]any); isArr {
				n[seg.Key] = append(arr, val)
				return n, nil
			}
			return nil, fmt.Errorf("add target %q: %w", seg.Key, domain.ErrAlreadyExists)
		}
		child, ok := n[seg.Key]
		if !ok {
			child = emptyContainer(segs[1])
		}
		newChild, err := applyAdd(child, segs[1:], val)
		if err != nil {
			return nil, err
		}
		n[seg.Key] = newChild
		return n, nil

	case []any:
		if !seg.IsIndex {
			return nil, fmt.Errorf("key %q into array: %w", seg.Key, domain.ErrPathNotFound)
		}
		if len(segs) == 1 {
			if seg.Index < len(n) {
				if arr, isArr := n[seg.Index].([]any); isArr {
					n[seg.Index] = append(arr, val)
					return n, nil
				}
				return nil, fmt.Errorf("add target [%d]: %w", seg.Index, domain.ErrAlreadyExists)
			}
			if seg.Index == len(n) {
				return append(n, val), nil
			}
			return nil, fmt.Errorf("index %d past end of array: %w", seg.Index, domain.ErrPathNotFound)
		}
		if seg.Index < len(n) {
			newChild, err := applyAdd(n[seg.Index], segs[1:], val)
			if err != nil {
				return nil, err
			}
			n[seg.Index] = newChild
			return n, nil
		}
		if seg.Index == len(n) {
			newChild, err := applyAdd(emptyContainer(segs[1]), segs[1:], val)
			if err != nil {
				return nil, err
			}
			return append(n, newChild), nil
		}
		return nil, fmt.Errorf("index %d past end of array: %w", seg.Index, domain.ErrPathNotFound)

	default:
		return nil, fmt.Errorf("segment %q addresses a scalar: %w", seg.Key, domain.ErrPathNotFound)
	}
}

func applyUpdate(node any, segs []Segment, val any) (any, error) {
	seg := segs[0]
	switch n := node.(type) {
	case map[string]any:
		child, ok := n[seg.Key]
		if !ok {
			return nil, fmt.Errorf("segment %q: %w", seg.Key, domain.ErrPathNotFound)
		}
		if len(segs) == 1 {
			n[seg.Key] = val
			return n, nil
		}
		newChild, err := applyUpdate(child, segs[1:], val)
		if err != nil {
			return nil, err
		}
		n[seg.Key] = newChild
		return n, nil

	case []any:
		if !seg.IsIndex || seg.Index >= len(n) {
			return nil, fmt.Errorf("segment %q: %w", seg.Key, domain.ErrPathNotFound)
		}
		if len(segs) == 1 {
			n[seg.Index] = val
			return n, nil
		}
		newChild, err := applyUpdate(n[seg.Index], segs[1:], val)
		if err != nil {
			return nil, err
		}
		n[seg.Index] = newChild
		return n, nil

	default:
		return nil, fmt.Errorf("segment %q addresses a scalar: %w", seg.Key, domain.ErrPathNotFound)
	}
}

func applyRemove(node any, segs []Segment) (any, error) {
	seg := segs[0]
	switch n := node.(type) {
	case map[string]any:
		child, ok := n[seg.Key]
		if !ok {
			return nil, fmt.Errorf("segment %q: %w", seg.Key, domain.ErrPathNotFound)
		}
		if len(segs) == 1 {
			delete(n, seg.Key)
			return n, nil
		}
		newChild, err := applyRemove(child, segs[1:])
		if err != nil {
			return nil, err
		}
		n[seg.Key] = newChild
		return n, nil

	case []any:
		if !seg.IsIndex || seg.Index >= len(n) {
			return nil, fmt.Errorf("segment %q: %w", seg.Key, domain.ErrPathNotFound)
		}
		if len(segs) == 1 {
			return append(n[:seg.Index], n[seg.Index+1:]...), nil
		}
		newChild, err := applyRemove(n[seg.Index], segs[1:])
		if err != nil {
			return nil, err
		}
		n[seg.Index] = newChild
		return n, nil

	default:
		return nil, fmt.Errorf("segment %q addresses a scalar: %w", seg.Key, domain.ErrPathNotFound)
	}
}

func emptyContainer(seg Segment) any {
	if seg.IsIndex {
		return []any{}
	}
	return map[string]any{}
}

// cloneDoc deep-copies a document through JSON encoding, which also
// normalizes any typed values the caller slipped in.
func cloneDoc(doc map[string]any) (map[string]any, error) {
	if doc == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

func normalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return out, nil
}
