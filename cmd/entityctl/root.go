package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "entityctl",
	Short: "EntityKit command line interface",
	Long: `entityctl manages an EntityKit deployment.

EntityKit persists entities through a lifecycle event dispatcher: every
insert, update, delete, and load runs through ordered pre and post phases
that listeners and entity hooks can observe or cancel.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
