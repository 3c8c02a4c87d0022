package registry

import (
	"os"

	"golang.org/x/term"
)

// BackendKind tags the transport a registry is served through.
type BackendKind int

const (
	// Native serves the tool set over stdio MCP to a host process.
	Native BackendKind = iota
	// Polyfill serves the tool set over the HTTP bridge.
	Polyfill
	// LocalOnly exposes the tool table for direct invocation and
	// prints the catalog; no registration surface was found.
	LocalOnly
)

func (k BackendKind) String() string {
	switch k {
	case Native:
		return "native"
	case Polyfill:
		return "polyfill"
	default:
		return "unsupported"
	}
}

// Backend is the transport handle produced by SelectBackend.
type Backend struct {
	Kind BackendKind
	// Status mirrors Kind for display: native, polyfill, unsupported.
	Status string
}

// Probe carries the environment facts backend selection looks at.
type Probe struct {
	// MCPHost is true when the process appears to be attached to an
	// MCP host (see DetectMCPHost).
	MCPHost bool
	// HTTPPort is the configured bridge port; 0 means not configured.
	HTTPPort int
}

// SelectBackend picks the serving transport once, at startup, in
// strict priority order: native host first, HTTP polyfill second,
// local fallback last. The decision is never re-evaluated; there is
// no hot-swap between backends during a session.
func SelectBackend(p Probe) Backend {
	switch {
	case p.MCPHost:
		return Backend{Kind: Native, Status: Native.String()}
	case p.HTTPPort > 0:
		return Backend{Kind: Polyfill, Status: Polyfill.String()}
	default:
		return Backend{Kind: LocalOnly, Status: LocalOnly.String()}
	}
}

// DetectMCPHost reports whether a native host registration surface is
// present: either the host marks itself via NOTEDECK_MCP=1, or stdin
// is a pipe rather than a terminal (how MCP hosts launch servers).
func DetectMCPHost() bool {
	if os.Getenv("NOTEDECK_MCP") == "1" {
		return true
	}
	return !term.IsTerminal(int(os.Stdin.Fd()))
}
