package main

import (
	"log"
	"os"

	"github.com/notedeckhq/notedeck-cli/internal/cli/commands"
	"github.com/urfave/cli/v2"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "notedeck",
		Usage:   "In-memory notes served as agent tools",
		Version: Version,
		Commands: []*cli.Command{
			// Serving
			commands.NewServeCommand(Version),
			commands.NewMcpCommand(Version),
			commands.NewHTTPCommand(),

			// Direct invocation
			commands.NewConsoleCommand(),
			commands.NewCallCommand(),

			// Meta
			commands.NewCatalogCommand(),
			commands.NewConfigCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
