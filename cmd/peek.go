package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kestrel-md/curio/internal/collection"
	"github.com/kestrel-md/curio/internal/schema"
	"github.com/kestrel-md/curio/internal/ui"
)

var peekCmd = &cobra.Command{
	Use:     "peek <path>",
	Aliases: []string{"preview", "inspect"},
	Short:   "Preview a curated artifact",
	Long: `Render a curated Markdown artifact to the terminal.

The path is resolved against the repository root, the way collection
manifests declare it. Frontmatter is shown as a header; the body is
rendered with glamour on a terminal and printed plain otherwise.

Examples:
  curio peek prompts/code-review.prompt.md
  curio peek instructions/go.instructions.md`,
	Args: cobra.ExactArgs(1),
	Run:  runPeek,
}

var peekRoot string

func init() {
	peekCmd.Flags().StringVar(&peekRoot, "root", "", "repository root (default: two levels above the binary)")
}

func runPeek(cmd *cobra.Command, args []string) {
	root, err := resolveRoot(peekRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	rel := args[0]
	content, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		exitWithError(fmt.Sprintf("artifact not found: %s", rel))
	}

	fm, body, err := schema.Parse(content)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Peeking"))
	fmt.Println()

	if badge := kindBadge(collection.KindForPath(rel)); badge != "" {
		fmt.Printf("  %s\n", badge)
	}
	if fm.Title != "" {
		fmt.Println(ui.Title.Render("  " + fm.Title))
	}
	if fm.Description != "" {
		for _, line := range ui.WrapText(fm.Description, ui.DescriptionWidth()) {
			fmt.Println(ui.RenderMuted("  " + line))
		}
	}
	fmt.Println()

	if ui.IsTTY {
		rendered, err := glamour.Render(body, "dark")
		if err == nil {
			fmt.Print(rendered)
			fmt.Println(ui.PageFooter())
			return
		}
	}

	fmt.Println(body)
}

func kindBadge(k collection.Kind) string {
	switch k {
	case collection.KindPrompt:
		return ui.PromptBadge()
	case collection.KindInstruction:
		return ui.InstructionBadge()
	case collection.KindChatMode:
		return ui.ChatModeBadge()
	default:
		return ""
	}
}
