package commands

import (
	"fmt"

	"github.com/notedeckhq/notedeck-cli/internal/config"
	"github.com/notedeckhq/notedeck-cli/internal/journal"
	"github.com/notedeckhq/notedeck-cli/internal/notes"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

// runtime bundles the state a command needs: config, the store, and
// the populated registry. Everything is constructed here, once, and
// passed down — no ambient globals.
type runtime struct {
	cfg   *config.Config
	store *notes.Store
	reg   *registry.Registry
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := notes.NewStore()
	reg := registry.New(journal.New(cfg.Journal.Capacity))
	if err := registry.RegisterNoteTools(reg, store); err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, store: store, reg: reg}, nil
}

// selectBackend applies the one-shot startup decision: a forced
// backend from config wins, otherwise the environment is probed.
func (rt *runtime) selectBackend() registry.Backend {
	switch rt.cfg.Backend {
	case "native":
		return registry.SelectBackend(registry.Probe{MCPHost: true})
	case "polyfill":
		port := rt.cfg.Server.Port
		if port == 0 {
			port = 8080
		}
		return registry.SelectBackend(registry.Probe{HTTPPort: port})
	case "local":
		return registry.SelectBackend(registry.Probe{})
	default:
		return registry.SelectBackend(registry.Probe{
			MCPHost:  registry.DetectMCPHost(),
			HTTPPort: rt.cfg.Server.Port,
		})
	}
}

func (rt *runtime) httpAddr() string {
	host := rt.cfg.Server.Host
	if host == "" {
		host = "localhost"
	}
	port := rt.cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}
