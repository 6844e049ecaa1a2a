// Command exo runs the Language: scripts from a file, inline source via
// -e, an interactive REPL, or an HTTP server exposing registered routes.
package main

import (
	"fmt"
	"os"

	"github.com/badrhassa/exo/cmd/exo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
