package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"github.com/notedeckhq/notedeck-cli/internal/httpapi"
	"github.com/notedeckhq/notedeck-cli/internal/mcp"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

// NewServeCommand probes the environment once and serves through
// whichever backend wins: native MCP host, HTTP polyfill, or the
// local fallback table.
func NewServeCommand(version string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Select a backend and start serving tools",
		Action: func(c *cli.Context) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			backend := rt.selectBackend()
			log.Printf("backend selected: %s", backend.Status)

			switch backend.Kind {
			case registry.Native:
				return mcp.NewServer(rt.reg, rt.store, version).Run(context.Background())
			case registry.Polyfill:
				return httpapi.New(rt.reg, rt.store).Listen(rt.httpAddr())
			default:
				// No registration surface: print the catalog and leave
				// the tool table reachable through the console.
				fmt.Println(RenderCatalog(rt.reg.Catalog()))
				fmt.Println("No MCP host or HTTP bridge found (status: unsupported).")
				fmt.Println("Run 'notedeck console' to invoke tools directly.")
				return nil
			}
		},
	}
}

// NewHTTPCommand starts the HTTP bridge explicitly.
func NewHTTPCommand() *cli.Command {
	return &cli.Command{
		Name:  "http",
		Usage: "Start the HTTP bridge",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "port to listen on (overrides config)",
			},
		},
		Action: func(c *cli.Context) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if c.Int("port") > 0 {
				rt.cfg.Server.Port = c.Int("port")
			}
			log.Printf("bridge listening on %s", rt.httpAddr())
			return httpapi.New(rt.reg, rt.store).Listen(rt.httpAddr())
		},
	}
}
