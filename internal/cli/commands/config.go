package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// NewConfigCommand shows the effective configuration and where the
// startup probe would land with it.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show effective configuration",
		Action: func(c *cli.Context) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			printJSON(rt.cfg)
			fmt.Printf("backend (would select): %s\n", rt.selectBackend().Status)
			return nil
		},
	}
}
