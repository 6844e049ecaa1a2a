package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/badrhassa/exo/internal/interpreter"
	"github.com/badrhassa/exo/internal/lang"
	"github.com/badrhassa/exo/internal/value"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl buffers input lines until any open block (func/if/while/for/
// route) has a matching end, then runs the buffered statement(s) against
// one persistent Interpreter, so declarations and function definitions
// from earlier lines stay visible to later ones.
func runRepl(_ *cobra.Command, _ []string) error {
	ip := interpreter.New(os.Stdout, os.Stdin)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("exo REPL — type 'exit' to quit")

	var buffered []string
	depth := 0
	for {
		if depth > 0 {
			fmt.Print("... ")
		} else {
			fmt.Print(">>> ")
		}
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := scanner.Text()
		if depth == 0 && strings.TrimSpace(line) == "exit" {
			return nil
		}

		buffered = append(buffered, line)
		tok := firstWord(strings.TrimSpace(line))
		switch {
		case lang.IsBlockOpener(tok):
			depth++
		case lang.IsEnd(tok) && depth > 0:
			depth--
		}
		if depth > 0 {
			continue
		}

		src := strings.Join(buffered, "\n")
		buffered = nil
		val, err := ip.RunSource(src, "<repl>")
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Format())
			continue
		}
		if _, isNull := val.(value.Null); val != nil && !isNull {
			fmt.Println(val.String())
		}
	}
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
