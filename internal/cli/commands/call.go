package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/notedeckhq/notedeck-cli/internal/api"
)

// NewCallCommand invokes one tool by name with a JSON input payload.
// With --remote the call goes to a running HTTP bridge; without it a
// fresh in-memory store is used, which mainly makes sense for the
// read-only tools and for demos.
func NewCallCommand() *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "Invoke a single tool",
		ArgsUsage: "<tool-name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "tool input as a JSON object",
				Value:   "{}",
			},
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "call through the HTTP bridge instead of in-process",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one tool name, got %d args", c.NArg())
			}
			name := c.Args().First()

			rt, err := newRuntime()
			if err != nil {
				return err
			}

			if c.Bool("remote") {
				var input map[string]any
				if err := json.Unmarshal([]byte(c.String("input")), &input); err != nil {
					return fmt.Errorf("--input must be a JSON object: %w", err)
				}
				client := api.NewClient(rt.httpAddr())
				result, err := client.CallTool(name, input)
				if err != nil {
					return err
				}
				var pretty any
				if err := json.Unmarshal(result, &pretty); err == nil {
					printJSON(pretty)
				} else {
					fmt.Println(string(result))
				}
				return nil
			}

			result, err := rt.reg.InvokeJSON(context.Background(), nil, name, []byte(c.String("input")))
			if err != nil {
				return err
			}
			printJSON(result)
			return nil
		},
	}
}
