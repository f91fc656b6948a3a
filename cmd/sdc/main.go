package main

import (
	"os"

	"github.com/spf13/cobra"

	"sdc/internal/interfaces/cli/migrate"
	"sdc/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sdc",
		Short: "SDC - Software Development Community site backend",
		Long:  `Backend for the SDC community site: admin session management, content administration and public intake.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
