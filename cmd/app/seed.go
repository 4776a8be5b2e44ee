package main

import (
	"workorders/internal/adapters/out/seed"

	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load work order types and performers from a YAML file",
	Long: `Loads the seed document given by --file, SEED_FILE or the built-in seed,
in that order. Existing rows are matched by id and overwritten.`,
	RunE: func(c *cobra.Command, _ []string) error {
		config, app, err := bootstrap()
		if err != nil {
			return err
		}
		if err = app.Migrate(); err != nil {
			return err
		}

		path := config.SeedFile
		if seedFile != "" {
			path = seedFile
		}
		file, err := seed.Read(path)
		if err != nil {
			return err
		}

		result, err := app.CreateSeedLoader().Load(c.Context(), file)
		if err != nil {
			return err
		}
		c.Printf("Work order types: %d created, %d updated; performers: %d\n",
			result.TypesCreated, result.TypesUpdated, result.Performers)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "seed YAML file")
}
