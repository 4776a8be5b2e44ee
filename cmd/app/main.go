package main

import (
	"fmt"
	"log/slog"
	"os"

	"workorders/cmd"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "workorders",
	Short: "Work order dispatch service",
	Long: `workorders keeps daily work orders of field crews: templates with quotas,
tasks and their statuses, performer assignment, completion statistics and
logistics advice for the day.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}

// bootstrap loads the configuration and opens the database.
func bootstrap() (cmd.Config, cmd.CompositionRoot, error) {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, cmd.CompositionRoot{}, err
	}

	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return cmd.Config{}, cmd.CompositionRoot{}, fmt.Errorf("connecting to database: %w", err)
	}

	return config, cmd.NewCompositionRoot(config, gormDB, newLogger()), nil
}
