package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"indohomz-server/storage"
	"indohomz-server/utils"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()

	rootCmd := &cobra.Command{
		Use:   "indohomz",
		Short: "IndoHomz rental backend tooling",
	}

	rootCmd.AddCommand(migrateCmd(), indexesCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			storage.InitializeDB()
			log.Info().Msg("✅ migrations up to date")
			return nil
		},
	}
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create performance indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := storage.InitializeDB()
			if err := storage.CreateIndexes(db); err != nil {
				return err
			}
			log.Info().Msg("✅ performance indexes created")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed demo users, properties, bookings and reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := storage.InitializeDB()
			cache := storage.NewCacheService(storage.InitializeRedis())
			return runSeed(db, cache)
		},
	}
}
