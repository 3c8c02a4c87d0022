package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/notedeckhq/notedeck-cli/internal/journal"
	"github.com/notedeckhq/notedeck-cli/internal/models"
	"github.com/notedeckhq/notedeck-cli/internal/notes"
)

// confirmFunc adapts a func to the Caller interface.
type confirmFunc func(ctx context.Context, message string) (bool, error)

func (f confirmFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

func approve(context.Context, string) (bool, error) { return true, nil }
func deny(context.Context, string) (bool, error)    { return false, nil }

func newTestRegistry(t *testing.T) (*Registry, *notes.Store) {
	t.Helper()
	store := notes.NewStore()
	r := New(journal.New(0))
	if err := RegisterNoteTools(r, store); err != nil {
		t.Fatalf("RegisterNoteTools: %v", err)
	}
	return r, store
}

func TestCatalogEnumerableBeforeAnyCall(t *testing.T) {
	r, _ := newTestRegistry(t)

	catalog := r.Catalog()
	want := []string{"add_note", "list_notes", "search_notes", "delete_note", "get_stats"}
	if len(catalog) != len(want) {
		t.Fatalf("catalog has %d tools, want %d", len(catalog), len(want))
	}
	for i, tool := range catalog {
		if tool.Name != want[i] {
			t.Errorf("catalog[%d] = %s, want %s", i, tool.Name, want[i])
		}
		if tool.Description == "" || tool.InputSchema == nil {
			t.Errorf("tool %s missing description or schema", tool.Name)
		}
	}

	readonly := map[string]bool{"list_notes": true, "search_notes": true, "get_stats": true}
	for _, tool := range catalog {
		if tool.ReadOnlyHint != readonly[tool.Name] {
			t.Errorf("tool %s ReadOnlyHint = %v", tool.Name, tool.ReadOnlyHint)
		}
	}
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	r, _ := newTestRegistry(t)
	err := r.Register(&Tool{
		Name:    "add_note",
		Handler: func(context.Context, Caller, map[string]any) (any, error) { return nil, nil },
	})
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestInvokeAddAndStats(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Invoke(ctx, nil, "add_note", map[string]any{
		"title":   "Hello",
		"content": "My first note",
		"tag":     "idea",
	})
	if err != nil {
		t.Fatalf("add_note: %v", err)
	}
	note, ok := result.(models.Note)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if note.ID != 1 || note.TagLabel() != "idea" {
		t.Errorf("note = %+v", note)
	}

	result, err = r.Invoke(ctx, nil, "get_stats", nil)
	if err != nil {
		t.Fatalf("get_stats: %v", err)
	}
	stats := result.(models.Stats)
	if stats.Total != 1 || stats.ByTag["idea"] != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestInvokeUnknownTool(t *testing.T) {
	r, _ := newTestRegistry(t)
	_, err := r.Invoke(context.Background(), nil, "bogus", nil)
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestValidationRejectsMalformedInput(t *testing.T) {
	r, store := newTestRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{"missing title", "add_note", map[string]any{"content": "x"}},
		{"missing content", "add_note", map[string]any{"title": "x"}},
		{"title wrong type", "add_note", map[string]any{"title": float64(5), "content": "x"}},
		{"empty title", "add_note", map[string]any{"title": "", "content": "x"}},
		{"invalid tag", "add_note", map[string]any{"title": "x", "content": "y", "tag": "urgent"}},
		{"missing id", "delete_note", map[string]any{}},
		{"id wrong type", "delete_note", map[string]any{"id": "seven"}},
		{"id not positive", "delete_note", map[string]any{"id": float64(0)}},
		{"missing query", "search_notes", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Invoke(ctx, nil, tt.tool, tt.args)
			if !IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	if store.Len() != 0 {
		t.Errorf("store mutated by rejected input: %d notes", store.Len())
	}
}

func TestUnknownExtraFieldsIgnored(t *testing.T) {
	r, store := newTestRegistry(t)
	_, err := r.Invoke(context.Background(), nil, "add_note", map[string]any{
		"title":   "ok",
		"content": "ok",
		"color":   "mauve",
	})
	if err != nil {
		t.Fatalf("extra field should be ignored, got %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("note not added")
	}
}

func TestDeleteConfirmationDenied(t *testing.T) {
	r, store := newTestRegistry(t)
	ctx := context.Background()
	store.Add("keep me", "content", nil)

	_, err := r.Invoke(ctx, confirmFunc(deny), "delete_note", map[string]any{"id": float64(1)})
	if !errors.Is(err, ErrUserCancelled) {
		t.Fatalf("expected ErrUserCancelled, got %v", err)
	}
	if store.Len() != 1 {
		t.Error("store changed after denied confirmation")
	}
}

func TestDeleteConfirmationApproved(t *testing.T) {
	r, store := newTestRegistry(t)
	ctx := context.Background()
	store.Add("doomed", "content", nil)

	var prompt string
	caller := confirmFunc(func(_ context.Context, message string) (bool, error) {
		prompt = message
		return true, nil
	})

	if _, err := r.Invoke(ctx, caller, "delete_note", map[string]any{"id": float64(1)}); err != nil {
		t.Fatalf("delete_note: %v", err)
	}
	if store.Len() != 0 {
		t.Error("note not deleted")
	}
	if prompt == "" {
		t.Error("confirmation prompt was empty")
	}
}

func TestDeleteWithoutCallerProceeds(t *testing.T) {
	r, store := newTestRegistry(t)
	store.Add("doomed", "content", nil)

	if _, err := r.Invoke(context.Background(), nil, "delete_note", map[string]any{"id": float64(1)}); err != nil {
		t.Fatalf("delete without caller should proceed: %v", err)
	}
	if store.Len() != 0 {
		t.Error("note not deleted")
	}
}

func TestDeleteNotFound(t *testing.T) {
	r, _ := newTestRegistry(t)
	_, err := r.Invoke(context.Background(), confirmFunc(approve), "delete_note", map[string]any{"id": float64(99)})
	if !errors.Is(err, notes.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEveryInvocationJournaledExactlyOnce(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	calls := []struct {
		tool string
		args map[string]any
	}{
		{"add_note", map[string]any{"title": "a", "content": "b"}},
		{"list_notes", nil},
		{"delete_note", map[string]any{"id": float64(99)}}, // fails NotFound
		{"add_note", map[string]any{"content": "no title"}}, // fails validation
		{"get_stats", nil},
	}
	for _, c := range calls {
		_, _ = r.Invoke(ctx, nil, c.tool, c.args)
	}

	entries := r.Journal().Recent(0)
	if len(entries) != len(calls) {
		t.Fatalf("journal has %d entries, want %d", len(entries), len(calls))
	}

	// Newest first: reverse of call order.
	if entries[0].Tool != "get_stats" || entries[len(entries)-1].Tool != "add_note" {
		t.Errorf("journal order wrong: first=%s last=%s", entries[0].Tool, entries[len(entries)-1].Tool)
	}

	if !entries[1].Failed() || !entries[2].Failed() {
		t.Error("failed calls must record failure entries")
	}
	if entries[1].Err == "" {
		t.Error("failure entry missing error message")
	}
	if entries[4].Failed() {
		t.Error("successful call recorded as failure")
	}
}

func TestInvokeJSONMalformedPayload(t *testing.T) {
	r, _ := newTestRegistry(t)
	_, err := r.InvokeJSON(context.Background(), nil, "add_note", []byte(`[1,2,3]`))
	if !IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestInvokeJSONEmptyPayload(t *testing.T) {
	r, _ := newTestRegistry(t)
	if _, err := r.InvokeJSON(context.Background(), nil, "list_notes", nil); err != nil {
		t.Errorf("list_notes with empty payload: %v", err)
	}
}
