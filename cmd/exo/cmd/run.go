package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/badrhassa/exo/internal/interpreter"
)

var (
	evalExpr  string
	dumpScope bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a script file or inline expression",
	Long: `Execute a program written in the Language from a file or inline source.

Examples:
  # Run a script file
  exo run greet.exo

  # Evaluate inline source
  exo run -e "print('hello')"

  # Run and dump the final global scope (debugging)
  exo run --dump-scope greet.exo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
	runCmd.Flags().BoolVar(&dumpScope, "dump-scope", false, "pretty-print the global scope after execution (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	var src, filename string

	switch {
	case evalExpr != "":
		src, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		src = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}

	ip := interpreter.New(os.Stdout, os.Stdin)
	_, runErr := ip.RunSource(src, filename)

	if dumpScope {
		fmt.Fprintln(os.Stderr, "Global scope:")
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(ip.ScopeBindings()))
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Format())
		return fmt.Errorf("execution failed")
	}
	return nil
}
