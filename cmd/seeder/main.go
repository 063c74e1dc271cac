package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/nhl-tracker/internal/config"
	"github.com/mauv0809/nhl-tracker/internal/database"
	"github.com/mauv0809/nhl-tracker/internal/metrics"
	"github.com/mauv0809/nhl-tracker/internal/player"
	"github.com/mauv0809/nhl-tracker/internal/roster"
	"github.com/spf13/cobra"
)

// sampleRoster is a 2022-23 season snapshot used for demos and manual testing.
var sampleRoster = []player.Player{
	player.New("Connor McDavid", "Edmonton", 64, 89, 22),
	player.New("Leon Draisaitl", "Edmonton", 52, 76, 6),
	player.New("David Pastrnak", "Boston", 61, 52, 34),
	player.New("Nikita Kucherov", "Tampa Bay", 30, 83, 4),
	player.New("Nathan MacKinnon", "Colorado", 42, 69, 22),
	player.New("Jason Robertson", "Dallas", 46, 63, 25),
	player.New("Erik Karlsson", "San Jose", 25, 76, -25),
	player.New("Matthew Tkachuk", "Florida", 40, 69, 12),
	player.New("Mitch Marner", "Toronto", 30, 69, 18),
	player.New("Jack Hughes", "New Jersey", 43, 56, 10),
	player.New("Auston Matthews", "Toronto", 40, 45, 7),
	player.New("Sidney Crosby", "Pittsburgh", 33, 60, 5),
}

// seed adds every sample player and reports how many were added and skipped.
func seed(store roster.RosterStore, players []player.Player) (added, skipped int) {
	for _, p := range players {
		if store.Add(p) {
			added++
			continue
		}
		log.Debug("Player already present, skipping", "name", p.Name)
		skipped++
	}
	return added, skipped
}

func run(dbPath string) error {
	log.Info("Starting roster seeder...")
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	cfg.ApplyLogging()

	db, teardown, err := database.InitDB(cfg.DBPath, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		return err
	}
	m := metrics.NewService()
	store := roster.New(db, teardown, m)
	defer store.Close()

	startTime := time.Now()
	added, skipped := seed(store, sampleRoster)
	log.Info("Seeding finished", "added", added, "skipped", skipped, "roster_size", store.Count(), "duration", time.Since(startTime))

	if cfg.MetricsTextfile != "" {
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Error("Failed to write metrics", "error", err)
		}
	}
	return nil
}

func main() {
	var dbPath string
	rootCmd := &cobra.Command{
		Use:          "seeder",
		Short:        "Add a sample roster to the tracker database",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dbPath)
		},
	}
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the roster database (overrides NHL_DB_PATH)")

	if err := rootCmd.Execute(); err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}
