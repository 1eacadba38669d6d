package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kestrel-md/curio/internal/collection"
	"github.com/kestrel-md/curio/internal/schema"
	"github.com/kestrel-md/curio/internal/ui"
	"github.com/kestrel-md/curio/internal/validate"
)

var lintCmd = &cobra.Command{
	Use:   "lint [manifest]",
	Short: "Lint the artifacts a collection references",
	Long: `Check the Markdown artifacts referenced by collection manifests.

Beyond link validation, lint opens every referenced artifact and parses
its YAML frontmatter: artifacts with unparseable frontmatter or without
a description are reported.

Like validate, lint never stops at the first problem; all findings are
reported and the exit code reflects the whole run.

Examples:
  curio lint                          # all collections
  curio lint collections/devops.yml   # one manifest`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLint,
}

var lintRoot string

func init() {
	lintCmd.Flags().StringVar(&lintRoot, "root", "", "repository root (default: two levels above the binary)")
}

func runLint(cmd *cobra.Command, args []string) {
	root, err := resolveRoot(lintRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	issues, err := runLinting(root, args, os.Stdout)
	if err != nil {
		exitWithError(err.Error())
	}
	if issues > 0 {
		os.Exit(1)
	}
}

// runLinting lints the named manifest, or every discovered one, and
// returns the total issue count.
func runLinting(root string, args []string, out io.Writer) (int, error) {
	var cols []*collection.Collection

	if len(args) == 1 {
		col, err := collection.Load(args[0])
		if err != nil {
			return 1, err
		}
		cols = append(cols, col)
	} else {
		var err error
		cols, err = collection.LoadAll(root)
		if err != nil {
			return 1, err
		}
	}

	issues := 0
	checked := 0
	for _, col := range cols {
		fmt.Fprintf(out, "\n%s\n", ui.RenderInfo("Linting "+filepath.Base(col.FilePath)))
		for _, item := range col.Items {
			checked++
			issues += lintArtifact(root, item.Path, out)
		}
	}

	fmt.Fprintf(out, "\n%s\n", ui.RenderHighlight("Summary"))
	fmt.Fprintln(out, ui.InfoLine(fmt.Sprintf("%d artifacts linted", checked)))
	if issues > 0 {
		fmt.Fprintln(out, ui.ErrorLine(fmt.Sprintf("%d issues", issues)))
	} else {
		fmt.Fprintln(out, ui.SuccessLine("no issues"))
	}

	return issues, nil
}

// lintArtifact checks one referenced artifact and returns its issue count.
func lintArtifact(root, rel string, out io.Writer) int {
	if !validate.Exists(root, rel) {
		fmt.Fprintln(out, ui.ErrorLine("missing: "+rel))
		return 1
	}

	content, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		fmt.Fprintln(out, ui.ErrorLine(fmt.Sprintf("unreadable: %s: %v", rel, err)))
		return 1
	}

	fm, _, err := schema.Parse(content)
	if err != nil {
		fmt.Fprintln(out, ui.ErrorLine(fmt.Sprintf("bad frontmatter: %s: %v", rel, err)))
		return 1
	}

	if fm.Description == "" {
		fmt.Fprintln(out, ui.WarningLine("no description: "+rel))
		return 1
	}

	fmt.Fprintln(out, ui.SuccessLine(rel))
	return 0
}
