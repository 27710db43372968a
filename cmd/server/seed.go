package main

import (
	"fmt"

	"github.com/news-api/internal/seed"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Truncate all tables and load fixtures",
	Long: `Replaces the contents of every table with the records in a YAML fixture file.
Identities restart at 1, so articles are numbered in file order.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Fixture file (defaults to SEED_PATH)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer db.Close()

	path := seedFile
	if path == "" {
		path = cfg.Paths.Seed
	}
	if path == "" {
		return fmt.Errorf("no fixture file given: use --file or set SEED_PATH")
	}

	fixtures, err := seed.LoadFile(path)
	if err != nil {
		return err
	}

	if err := db.RunMigrations(cfg.Paths.Migrations); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	result, err := seed.NewSeeder(db, log).Run(cmd.Context(), fixtures)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d topics, %d users, %d articles, %d comments from %s in %s\n",
		result.Topics, result.Users, result.Articles, result.Comments, path, result.Duration)
	return nil
}
