package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kestrel-md/curio/internal/apropos"
	"github.com/kestrel-md/curio/internal/collection"
	"github.com/kestrel-md/curio/internal/ui"
)

var aproposCmd = &cobra.Command{
	Use:     "apropos <query>",
	Aliases: []string{"search", "whatis"},
	Short:   "Find collections by keyword",
	Long: `Search collections by keyword.

Like Unix apropos, this helps you discover which collection covers a
topic. Searches collection ids, names, descriptions, tags, and the
paths they curate.

Examples:
  curio apropos terraform        # Find infrastructure collections
  curio apropos "code review"    # Find review-related collections`,
	Args: cobra.MinimumNArgs(1),
	Run:  runApropos,
}

var aproposRoot string

func init() {
	aproposCmd.Flags().StringVar(&aproposRoot, "root", "", "repository root (default: two levels above the binary)")
}

func runApropos(cmd *cobra.Command, args []string) {
	root, err := resolveRoot(aproposRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	cols, err := collection.LoadAll(root)
	if err != nil {
		exitWithError(err.Error())
	}

	query := strings.Join(args, " ")

	matches := apropos.Search(apropos.BuildEntries(cols), query)
	if len(matches) == 0 {
		fmt.Print(ui.NoResults(query))
		return
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Apropos"))
	fmt.Println()

	descWidth := ui.DescriptionWidth()
	for _, m := range matches {
		name := lipgloss.NewStyle().Foreground(ui.White).Bold(true).Render(m.Entry.Name)
		id := lipgloss.NewStyle().Foreground(ui.DarkGray).Render("(" + m.Entry.ID + ")")
		fmt.Printf("  %s %s\n", name, id)
		if m.Entry.Description != "" {
			fmt.Printf("    %s\n", ui.RenderMuted(ui.Truncate(m.Entry.Description, descWidth)))
		}
		fmt.Println()
	}

	fmt.Println(ui.PageFooter())
}
