package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "symtab",
	Short: "Scope and declaration checker for Arc sources",
	Long: `symtab runs the declaration pass of the Arc front end and dumps the
symbol table it builds.

Commands:
  check  Check a source file or package directory and dump its scopes
`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every scope and declaration")

	rootCmd.AddCommand(CheckCmd)
}
