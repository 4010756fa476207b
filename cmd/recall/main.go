package main

import (
	"os"

	"github.com/spf13/cobra"

	"recall/internal/config"
)

var (
	configPath string
	dbDSN      string
)

func main() {
	root := &cobra.Command{
		Use:   "recall",
		Short: "Persistent knowledge-graph memory for autonomous agents",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to config file")
	root.PersistentFlags().StringVar(&dbDSN, "db", "", "Database DSN, overrides config (sqlite://path)")
	root.AddCommand(initCmd())
	root.AddCommand(addEntityCmd())
	root.AddCommand(addObservationCmd())
	root.AddCommand(addRelationCmd())
	root.AddCommand(deleteEntityCmd())
	root.AddCommand(deleteObservationCmd())
	root.AddCommand(deleteRelationCmd())
	root.AddCommand(getEntityCmd())
	root.AddCommand(getRunsCmd())
	root.AddCommand(logRunCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(readGraphCmd())
	root.AddCommand(resetCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
