package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kestrel-md/curio/internal/collection"
	"github.com/kestrel-md/curio/internal/ui"
	"github.com/kestrel-md/curio/internal/validate"
)

var infoCmd = &cobra.Command{
	Use:     "info <collection>",
	Aliases: []string{"study", "examine"},
	Short:   "Study a collection in detail",
	Long: `Examine one collection manifest.

Shows its metadata, tags, and every curated entry with its kind and
whether the referenced file exists on disk.

The collection may be named by id or by manifest path.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

var infoRoot string

func init() {
	infoCmd.Flags().StringVar(&infoRoot, "root", "", "repository root (default: two levels above the binary)")
}

func runInfo(cmd *cobra.Command, args []string) {
	root, err := resolveRoot(infoRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	col := findCollection(root, args[0])
	if col == nil {
		exitWithError(fmt.Sprintf("collection '%s' not found", args[0]))
	}

	fmt.Println(ui.Title.Render(col.Name))
	fmt.Println()
	fmt.Printf("%s %s\n", ui.CollectionBadge(), ui.Muted.Render(col.ID))
	fmt.Println()

	if col.Description != "" {
		fmt.Println(col.Description)
		fmt.Println()
	}

	if len(col.Tags) > 0 {
		fmt.Printf("  Tags:     %s\n", ui.RenderMuted(strings.Join(col.Tags, ", ")))
	}
	fmt.Printf("  Manifest: %s\n", col.FilePath)
	fmt.Println()

	fmt.Println(ui.Subtitle.Render("Entries"))
	fmt.Println(ui.Divider(40))

	for _, item := range col.Items {
		status := ui.SuccessLine(item.Path)
		if !validate.Exists(root, item.Path) {
			status = ui.ErrorLine(item.Path)
		}
		fmt.Printf("%s %s\n", status, kindTag(item.EffectiveKind()))
	}
}

// findCollection resolves a collection by manifest path first, then by id.
func findCollection(root, nameOrPath string) *collection.Collection {
	if _, err := os.Stat(nameOrPath); err == nil {
		if col, err := collection.Load(nameOrPath); err == nil {
			return col
		}
	}

	cols, err := collection.LoadAll(root)
	if err != nil {
		return nil
	}
	return collection.FindByID(cols, nameOrPath)
}

func kindTag(k collection.Kind) string {
	if k == "" {
		return ""
	}
	return ui.RenderDim("[" + string(k) + "]")
}
