package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

var (
	catalogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	toolNameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	readOnlyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	mutatingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	paramStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

// ToolDescriptor is the JSON shape for catalog dumps.
type ToolDescriptor struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	InputSchema  any      `json:"inputSchema"`
	Parameters   []string `json:"parameters"`
	ReadOnlyHint bool     `json:"readOnlyHint"`
}

// CatalogDescriptors converts registry tools into descriptor DTOs.
func CatalogDescriptors(tools []*registry.Tool) []ToolDescriptor {
	out := make([]ToolDescriptor, 0, len(tools))
	for _, tool := range tools {
		out = append(out, ToolDescriptor{
			Name:         tool.Name,
			Description:  tool.Description,
			InputSchema:  tool.InputSchema,
			Parameters:   paramNames(tool),
			ReadOnlyHint: tool.ReadOnlyHint,
		})
	}
	return out
}

func paramNames(tool *registry.Tool) []string {
	if tool.InputSchema == nil || len(tool.InputSchema.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(tool.InputSchema.Properties))
	for name := range tool.InputSchema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderCatalog renders the tool catalog for terminal display. This
// is what the unsupported fallback prints at startup.
func RenderCatalog(tools []*registry.Tool) string {
	var b strings.Builder
	b.WriteString(catalogTitleStyle.Render("Notedeck tool catalog"))
	b.WriteString("\n\n")

	for _, tool := range tools {
		badge := mutatingStyle.Render("[mutates]")
		if tool.ReadOnlyHint {
			badge = readOnlyStyle.Render("[read-only]")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", toolNameStyle.Render(tool.Name), badge))
		b.WriteString("  " + tool.Description + "\n")
		if params := paramNames(tool); len(params) > 0 {
			b.WriteString("  params: " + paramStyle.Render(strings.Join(params, ", ")) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// NewCatalogCommand prints the catalog.
func NewCatalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Show the tool catalog",
		Action: func(c *cli.Context) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			fmt.Println(RenderCatalog(rt.reg.Catalog()))
			return nil
		},
	}
}
