package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(c *cobra.Command, _ []string) error {
		_, app, err := bootstrap()
		if err != nil {
			return err
		}
		if err = app.Migrate(); err != nil {
			return err
		}
		c.Println("Schema is up to date")
		return nil
	},
}
