package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrel-md/curio/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:     "validate [manifest]",
	Aliases: []string{"check"},
	Short:   "Validate collection manifest links",
	Long: `Check that every path declared in a collection manifest exists.

With no argument, every .yml manifest in the repository's collections
directory is checked. With a manifest path, only that file is checked.

Every broken link is reported and the scan continues to the end; the
exit code is nonzero if any declared path (or the named manifest
itself) is missing.

Examples:
  curio validate                          # all collections
  curio validate collections/devops.yml   # one manifest`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

var validateRoot string

func init() {
	validateCmd.Flags().StringVar(&validateRoot, "root", "", "repository root (default: two levels above the binary)")
}

func runValidate(cmd *cobra.Command, args []string) {
	root, err := resolveRoot(validateRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	res, err := runValidation(root, args, os.Stdout)
	if err != nil {
		exitWithError(err.Error())
	}
	if !res.Passed() {
		os.Exit(1)
	}
}

// runValidation drives one validation pass and prints the final
// summary. In single-manifest mode a missing manifest ends the run
// immediately, without a summary block.
func runValidation(root string, args []string, out io.Writer) (validate.Result, error) {
	v := validate.New(root, out)

	var res validate.Result
	if len(args) == 1 {
		res = v.File(args[0])
		if res.BadManifests > 0 {
			return res, nil
		}
	} else {
		var err error
		res, err = v.All()
		if err != nil {
			return res, err
		}
	}

	v.Summary(res)
	return res, nil
}
