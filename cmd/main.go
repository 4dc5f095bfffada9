package main

import (
	"os"

	"clinica-dental-api/cmd/bootstrap"
	"clinica-dental-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:   "clinic-api",
		Short: "Dental clinic appointment API",
		Long: `REST backend for booking dental clinic appointments (citas) between
clients, dentists and services, with clinic-hours and overlap validation.`,
		SilenceUsage: true,
		// Running without a sub-command starts the server
		RunE: serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newMigrateCommand())

	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				logrus.Fatalf("Failed to initialize application: %v", err)
			}

			// Run the application
			app.Run()
			return nil
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrateUp
			if len(args) == 1 {
				parsed, err := database.ParseMigrationDirection(args[0])
				if err != nil {
					return err
				}
				direction = parsed
			}

			if err := bootstrap.Migrate(direction); err != nil {
				logrus.Errorf("Migration failed: %v", err)
				return err
			}
			return nil
		},
	}
}
