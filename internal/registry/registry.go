// Package registry wraps note store operations as named, schema-described
// tools and routes every invocation through a single dispatch path:
// validate, execute, journal, return.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/notedeckhq/notedeck-cli/internal/journal"
)

// Caller is the capability surface a transport offers to tools. A nil
// Caller means the transport offers nothing; mutating tools then skip
// confirmation rather than fail (confirmation is best-effort).
type Caller interface {
	// Confirm suspends the tool call until the user approves or
	// denies. The error is for transport failures, not denial.
	Confirm(ctx context.Context, message string) (bool, error)
}

// Handler executes a tool with already-validated arguments.
type Handler func(ctx context.Context, caller Caller, args map[string]any) (any, error)

// Tool is one registered tool: a named, schema-described wrapper
// around exactly one store operation.
type Tool struct {
	Name         string
	Description  string
	InputSchema  *jsonschema.Schema
	ReadOnlyHint bool
	Handler      Handler

	resolved *jsonschema.Resolved
}

// Registry holds the tool table and the invocation journal. One
// instance is constructed at startup and handed to whichever transport
// the backend selection picked.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]*Tool
	order   []string
	journal *journal.Journal
}

// New creates an empty registry journaling into j.
func New(j *journal.Journal) *Registry {
	return &Registry{
		tools:   make(map[string]*Tool),
		journal: j,
	}
}

// Register adds a tool. Names must be unique; a duplicate is a
// programming error and is rejected.
func (r *Registry) Register(t *Tool) error {
	if t.Name == "" || t.Handler == nil {
		return fmt.Errorf("tool must have a name and a handler")
	}

	if t.InputSchema != nil {
		resolved, err := t.InputSchema.Resolve(nil)
		if err != nil {
			return fmt.Errorf("tool %s: bad input schema: %w", t.Name, err)
		}
		t.resolved = resolved
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %s already registered", t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the tool table entry for name. This is the well-known
// lookup surface the LocalOnly backend exposes for manual invocation.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Catalog returns all tools in registration order. It is available on
// every backend, before any call.
func (r *Registry) Catalog() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Names returns all tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Journal exposes the invocation journal for observability surfaces.
func (r *Registry) Journal() *journal.Journal {
	return r.journal
}

// Invoke runs a tool by name. The sequence is fixed: lookup, schema
// validation, execution, then exactly one journal entry — written
// after the handler resolved or failed, never before. Failures are
// journaled and returned to the caller; nothing here is fatal to the
// process.
func (r *Registry) Invoke(ctx context.Context, caller Caller, name string, args map[string]any) (any, error) {
	tool, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	if args == nil {
		args = map[string]any{}
	}

	if tool.resolved != nil {
		if err := tool.resolved.Validate(args); err != nil {
			verr := &ValidationError{Tool: name, Err: err}
			r.journal.RecordFailure(name, args, verr)
			return nil, verr
		}
	}

	result, err := tool.Handler(ctx, caller, args)
	if err != nil {
		r.journal.RecordFailure(name, args, err)
		return nil, err
	}

	r.journal.RecordSuccess(name, args, marshalResult(result))
	return result, nil
}

// InvokeJSON is Invoke with a raw JSON argument payload, for callers
// that have not decoded it yet (HTTP bridge, console --input).
func (r *Registry) InvokeJSON(ctx context.Context, caller Caller, name string, raw []byte) (any, error) {
	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			verr := &ValidationError{Tool: name, Err: fmt.Errorf("input is not a JSON object: %w", err)}
			r.journal.RecordFailure(name, nil, verr)
			return nil, verr
		}
	}
	return r.Invoke(ctx, caller, name, args)
}

func marshalResult(result any) string {
	if result == nil {
		return "{}"
	}
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(b)
}

// decodeInput maps validated arguments onto a tool's typed input
// struct. Unknown extra fields are ignored by the JSON round-trip,
// matching the invocation contract.
func decodeInput(args map[string]any, v any) error {
	b, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
