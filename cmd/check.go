package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/core-symtab/compiler"
	"github.com/spf13/cobra"
)

// check: run the declaration pass and dump scopes
var CheckCmd = &cobra.Command{
	Use:   "check <file|dir>",
	Short: "Check declarations and dump the symbol table",
	Args:  cobra.ExactArgs(1),
	RunE:  checkRun,
}

func init() {
	CheckCmd.Flags().IntP("buckets", "b", compiler.DefaultBuckets, "bucket count of every scope table")
	CheckCmd.Flags().StringP("log", "l", "", "append scope dumps to this file instead of stdout")
	CheckCmd.Flags().String("dump", "chain", "what to dump when a scope closes: none, scope or chain")
}

func checkRun(cmd *cobra.Command, args []string) error {
	src := args[0]
	buckets, _ := cmd.Flags().GetInt("buckets")
	logPath, _ := cmd.Flags().GetString("log")
	dumpFlag, _ := cmd.Flags().GetString("dump")

	dump, err := compiler.ParseDumpMode(dumpFlag)
	if err != nil {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("no such file or directory: %s", src)
	}

	var sink io.Writer = cmd.OutOrStdout()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}

	moduleName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	checker, err := compiler.NewChecker(moduleName, compiler.Options{
		Buckets:   buckets,
		Dump:      dump,
		Sink:      sink,
		LogOutput: cmd.ErrOrStderr(),
		Verbose:   verbose,
	})
	if err != nil {
		return err
	}

	if info.IsDir() {
		err = checker.CheckPackage(src)
	} else {
		err = checker.CheckFile(src)
	}

	if perr := checker.Diagnostics().Print(cmd.ErrOrStderr()); perr != nil {
		return perr
	}
	if verbose {
		checker.PrintSummary()
	}
	return err
}
