package commands

import (
	"strings"
	"testing"

	"github.com/notedeckhq/notedeck-cli/internal/config"
	"github.com/notedeckhq/notedeck-cli/internal/journal"
	"github.com/notedeckhq/notedeck-cli/internal/notes"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(journal.New(0))
	if err := registry.RegisterNoteTools(reg, notes.NewStore()); err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestRenderCatalogListsEveryTool(t *testing.T) {
	out := RenderCatalog(testRegistry(t).Catalog())

	for _, want := range []string{"add_note", "list_notes", "search_notes", "delete_note", "get_stats"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog output missing %s", want)
		}
	}
	if !strings.Contains(out, "title") || !strings.Contains(out, "query") {
		t.Error("catalog output missing parameter names")
	}
}

func TestCatalogDescriptors(t *testing.T) {
	descs := CatalogDescriptors(testRegistry(t).Catalog())
	if len(descs) != 5 {
		t.Fatalf("got %d descriptors", len(descs))
	}

	byName := map[string]ToolDescriptor{}
	for _, d := range descs {
		byName[d.Name] = d
	}

	add := byName["add_note"]
	if add.ReadOnlyHint {
		t.Error("add_note must not be read-only")
	}
	if len(add.Parameters) != 3 {
		t.Errorf("add_note params = %v", add.Parameters)
	}

	stats := byName["get_stats"]
	if !stats.ReadOnlyHint {
		t.Error("get_stats must be read-only")
	}
	if len(stats.Parameters) != 0 {
		t.Errorf("get_stats params = %v", stats.Parameters)
	}
}

func TestSelectBackendForced(t *testing.T) {
	tests := []struct {
		forced string
		want   string
	}{
		{"native", "native"},
		{"polyfill", "polyfill"},
		{"local", "unsupported"},
	}

	for _, tt := range tests {
		rt := &runtime{cfg: &config.Config{Backend: tt.forced}}
		if got := rt.selectBackend().Status; got != tt.want {
			t.Errorf("forced %q selected %q, want %q", tt.forced, got, tt.want)
		}
	}
}

func TestHTTPAddrDefaults(t *testing.T) {
	rt := &runtime{cfg: &config.Config{}}
	if got := rt.httpAddr(); got != "localhost:8080" {
		t.Errorf("httpAddr = %q", got)
	}

	rt.cfg.Server.Host = "0.0.0.0"
	rt.cfg.Server.Port = 9999
	if got := rt.httpAddr(); got != "0.0.0.0:9999" {
		t.Errorf("httpAddr = %q", got)
	}
}
