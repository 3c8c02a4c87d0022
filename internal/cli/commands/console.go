package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"

	"github.com/notedeckhq/notedeck-cli/internal/models"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

// surveyCaller is the console's confirmation capability: destructive
// tools block on a terminal yes/no prompt.
type surveyCaller struct{}

func (surveyCaller) Confirm(_ context.Context, message string) (bool, error) {
	confirmed := false
	err := survey.AskOne(&survey.Confirm{Message: message}, &confirmed)
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

// NewConsoleCommand runs the interactive fallback console. The store
// lives for the duration of the loop, so notes created here stay
// visible to later calls in the same session.
func NewConsoleCommand() *cli.Command {
	return &cli.Command{
		Name:  "console",
		Usage: "Invoke tools interactively against a session-local store",
		Action: func(c *cli.Context) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			return runConsole(rt)
		},
	}
}

func runConsole(rt *runtime) error {
	fmt.Println(RenderCatalog(rt.reg.Catalog()))
	fmt.Println()

	ctx := context.Background()
	lastResult := ""

	options := append(rt.reg.Names(), "journal", "copy last result", "quit")
	for {
		choice := ""
		if err := survey.AskOne(&survey.Select{
			Message:  "Invoke:",
			Options:  options,
			PageSize: len(options),
		}, &choice); err != nil {
			return err
		}

		switch choice {
		case "quit":
			return nil
		case "journal":
			printJSON(rt.reg.Journal().Recent(10))
			continue
		case "copy last result":
			if lastResult == "" {
				fmt.Println("nothing to copy yet")
				continue
			}
			if err := clipboard.WriteAll(lastResult); err != nil {
				fmt.Printf("clipboard unavailable: %v\n", err)
				continue
			}
			fmt.Println("copied")
			continue
		}

		args, err := promptToolInput(choice)
		if err != nil {
			return err
		}

		result, err := rt.reg.Invoke(ctx, surveyCaller{}, choice, args)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		lastResult = printJSON(result)
	}
}

// promptToolInput collects each tool's arguments from the terminal.
func promptToolInput(tool string) (map[string]any, error) {
	args := map[string]any{}

	switch tool {
	case "add_note":
		qs := []*survey.Question{
			{Name: "title", Prompt: &survey.Input{Message: "Title:"}, Validate: survey.Required},
			{Name: "content", Prompt: &survey.Input{Message: "Content:"}, Validate: survey.Required},
		}
		answers := struct {
			Title   string
			Content string
		}{}
		if err := survey.Ask(qs, &answers); err != nil {
			return nil, err
		}
		args["title"] = answers.Title
		args["content"] = answers.Content

		tagOptions := []string{"(none)"}
		for _, t := range models.Tags() {
			tagOptions = append(tagOptions, string(t))
		}
		tag := ""
		if err := survey.AskOne(&survey.Select{Message: "Tag:", Options: tagOptions}, &tag); err != nil {
			return nil, err
		}
		if tag != "(none)" {
			args["tag"] = tag
		}

	case "search_notes":
		query := ""
		if err := survey.AskOne(&survey.Input{Message: "Query (empty matches all):"}, &query); err != nil {
			return nil, err
		}
		args["query"] = query

	case "delete_note":
		raw := ""
		if err := survey.AskOne(&survey.Input{Message: "Note id:"}, &raw, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("id must be an integer: %w", err)
		}
		args["id"] = id
	}

	return args, nil
}

func printJSON(data any) string {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", data)
		return fmt.Sprintf("%v", data)
	}
	fmt.Println(string(b))
	return string(b)
}

var _ registry.Caller = surveyCaller{}
