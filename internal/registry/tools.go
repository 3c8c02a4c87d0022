package registry

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/notedeckhq/notedeck-cli/internal/models"
	"github.com/notedeckhq/notedeck-cli/internal/notes"
)

// Typed inputs, one per tool. The declared schema gets them past
// shape validation; the handlers still own the semantic checks
// (non-empty text, valid tag, positive id).

type AddNoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag,omitempty"`
}

type SearchNotesInput struct {
	Query string `json:"query"`
}

type DeleteNoteInput struct {
	ID int `json:"id"`
}

func tagEnum() []any {
	tags := models.Tags()
	out := make([]any, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

func objectSchema(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// RegisterNoteTools wires the five note tools onto the registry.
// Every tool wraps exactly one store operation.
func RegisterNoteTools(r *Registry, store *notes.Store) error {
	tools := []*Tool{
		{
			Name:        "add_note",
			Description: "Create a new note with a title, content, and optional tag (idea, todo, reference, important). Returns the created note with its assigned id.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"title":   {Type: "string", Description: "Note title"},
				"content": {Type: "string", Description: "Note body text"},
				"tag":     {Type: "string", Description: "Optional category", Enum: tagEnum()},
			}, "title", "content"),
			Handler: func(ctx context.Context, caller Caller, args map[string]any) (any, error) {
				var in AddNoteInput
				if err := decodeInput(args, &in); err != nil {
					return nil, &ValidationError{Tool: "add_note", Err: err}
				}
				if in.Title == "" {
					return nil, &ValidationError{Tool: "add_note", Err: fmt.Errorf("title must not be empty")}
				}
				if in.Content == "" {
					return nil, &ValidationError{Tool: "add_note", Err: fmt.Errorf("content must not be empty")}
				}
				tag, err := models.ParseTag(in.Tag)
				if err != nil {
					return nil, &ValidationError{Tool: "add_note", Err: err}
				}
				return store.Add(in.Title, in.Content, tag), nil
			},
		},
		{
			Name:         "list_notes",
			Description:  "List all notes in creation order.",
			InputSchema:  objectSchema(nil),
			ReadOnlyHint: true,
			Handler: func(ctx context.Context, caller Caller, args map[string]any) (any, error) {
				return store.List(), nil
			},
		},
		{
			Name:         "search_notes",
			Description:  "Case-insensitive substring search over note titles, contents, and tags. An empty query returns every note.",
			InputSchema:  objectSchema(map[string]*jsonschema.Schema{"query": {Type: "string", Description: "Substring to match"}}, "query"),
			ReadOnlyHint: true,
			Handler: func(ctx context.Context, caller Caller, args map[string]any) (any, error) {
				var in SearchNotesInput
				if err := decodeInput(args, &in); err != nil {
					return nil, &ValidationError{Tool: "search_notes", Err: err}
				}
				return store.Search(in.Query), nil
			},
		},
		{
			Name:        "delete_note",
			Description: "Delete a note by id. Asks the user for confirmation when the caller supports it.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{"id": {Type: "integer", Description: "Id of the note to delete"}}, "id"),
			Handler: func(ctx context.Context, caller Caller, args map[string]any) (any, error) {
				var in DeleteNoteInput
				if err := decodeInput(args, &in); err != nil {
					return nil, &ValidationError{Tool: "delete_note", Err: err}
				}
				if in.ID < 1 {
					return nil, &ValidationError{Tool: "delete_note", Err: fmt.Errorf("id must be a positive integer")}
				}

				note, err := store.Get(in.ID)
				if err != nil {
					return nil, err
				}

				if caller != nil {
					ok, err := caller.Confirm(ctx, fmt.Sprintf("Delete note #%d (%q)?", note.ID, note.Title))
					if err != nil {
						return nil, fmt.Errorf("confirmation failed: %w", err)
					}
					if !ok {
						return nil, ErrUserCancelled
					}
				}

				removed, err := store.Delete(in.ID)
				if err != nil {
					return nil, err
				}
				return map[string]any{"deleted": removed}, nil
			},
		},
		{
			Name:         "get_stats",
			Description:  "Count notes overall and per tag. Untagged notes are reported under \"untagged\".",
			InputSchema:  objectSchema(nil),
			ReadOnlyHint: true,
			Handler: func(ctx context.Context, caller Caller, args map[string]any) (any, error) {
				return store.Stats(), nil
			},
		},
	}

	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}
