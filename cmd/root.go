package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kestrel-md/curio/internal/repo"
	"github.com/kestrel-md/curio/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "curio",
	Short: "The curator's companion for prompt collections",
	Long: ui.Logo() + `

  Keep a curated library of prompts, instructions, and chat modes honest.
  Validate collection manifests, browse their contents, and lint the
  artifacts they reference.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(peekCmd)
	rootCmd.AddCommand(aproposCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("curio %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}

// resolveRoot returns the repository root: the --root flag value when
// given, otherwise two directory levels above the binary.
func resolveRoot(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	return repo.Root()
}
