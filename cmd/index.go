package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kestrel-md/curio/internal/collection"
	"github.com/kestrel-md/curio/internal/ui"
)

var indexCmd = &cobra.Command{
	Use:     "index",
	Aliases: []string{"list", "ls", "contents"},
	Short:   "List the curated collections",
	Long:    `Display every collection manifest with its description and item counts.`,
	Run:     runIndex,
}

var (
	indexRoot  string
	indexShort bool
)

func init() {
	indexCmd.Flags().StringVar(&indexRoot, "root", "", "repository root (default: two levels above the binary)")
	indexCmd.Flags().BoolVar(&indexShort, "short", false, "Truncate descriptions to one line")
}

func runIndex(cmd *cobra.Command, args []string) {
	root, err := resolveRoot(indexRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	cols, err := collection.LoadAll(root)
	if err != nil {
		exitWithError(err.Error())
	}

	if len(cols) == 0 {
		fmt.Print(ui.EmptyShelf())
		return
	}

	// Header
	fmt.Println()
	fmt.Println(ui.SectionHeader("Collections"))
	fmt.Println()

	descWidth := ui.DescriptionWidth()
	totalItems := 0

	for _, col := range cols {
		name := lipgloss.NewStyle().Foreground(ui.White).Bold(true).Render(col.Name)
		id := lipgloss.NewStyle().Foreground(ui.DarkGray).Render("(" + col.ID + ")")
		fmt.Printf("  %s %s %s\n", ui.CollectionBadge(), name, id)

		// Display description: truncate if --short, wrap otherwise
		descStyle := lipgloss.NewStyle().Foreground(ui.Gray)
		if col.Description != "" {
			if indexShort {
				fmt.Printf("    %s\n", descStyle.Render(ui.Truncate(col.Description, descWidth)))
			} else {
				for _, line := range ui.WrapText(col.Description, descWidth) {
					fmt.Printf("    %s\n", descStyle.Render(line))
				}
			}
		}

		fmt.Printf("    %s\n", kindTally(col))
		fmt.Println()

		totalItems += len(col.Items)
	}

	footer := fmt.Sprintf("  %d collections, %d curated items", len(cols), totalItems)
	fmt.Println(lipgloss.NewStyle().Foreground(ui.DarkGray).Render(footer))
	fmt.Println(ui.PageFooter())
}

// kindTally renders per-kind item counts for a collection.
func kindTally(col *collection.Collection) string {
	counts := col.CountByKind()

	var parts []string
	if n := counts[collection.KindPrompt]; n > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", ui.PromptBadge(), n))
	}
	if n := counts[collection.KindInstruction]; n > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", ui.InstructionBadge(), n))
	}
	if n := counts[collection.KindChatMode]; n > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", ui.ChatModeBadge(), n))
	}
	if n := counts[collection.Kind("")]; n > 0 {
		parts = append(parts, ui.RenderMuted(fmt.Sprintf("%d other", n)))
	}
	if len(parts) == 0 {
		return ui.RenderMuted("no items")
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += "  " + p
	}
	return out
}
