package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/badrhassa/exo/internal/config"
	"github.com/badrhassa/exo/internal/httpadapter"
	"github.com/badrhassa/exo/internal/interpreter"
)

var (
	servePort  int
	configPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Load a script's routes and serve them over HTTP",
	Long: `Execute a script file (which typically registers one or more routes
with the route statement) and then serve those routes over HTTP
(spec.md's HTTP adapter: GET-only, 404 with a route index, 500 with the
formatted error on a route body failure).`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config, default 8000)")
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func runServe(_ *cobra.Command, args []string) error {
	filename := args[0]

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("%s", err.Format())
		}
		cfg = loaded
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ip := interpreter.NewWithCap(os.Stdout, os.Stdin, cfg.MaxRecursion)
	ip.Runner.Modules.SearchPaths = cfg.ModulePaths
	if _, err := ip.RunFile(filename); err != nil {
		return fmt.Errorf("%s", err.Format())
	}

	adapter := httpadapter.New(ip)
	fmt.Printf("listening on 0.0.0.0:%d\n", cfg.Port)
	return adapter.ListenAndServe(cfg.Port)
}
