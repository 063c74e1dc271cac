package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/nhl-tracker/internal/config"
	"github.com/mauv0809/nhl-tracker/internal/database"
	"github.com/mauv0809/nhl-tracker/internal/metrics"
	"github.com/mauv0809/nhl-tracker/internal/query"
	"github.com/mauv0809/nhl-tracker/internal/roster"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand for one invocation.
type app struct {
	dbPath  string
	cfg     config.Config
	store   roster.RosterStore
	queries *query.Service
	metrics *metrics.Service
}

func (a *app) open(cmd *cobra.Command, args []string) error {
	if a.store != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	cfg.ApplyLogging()
	a.cfg = cfg

	db, teardown, err := database.InitDB(cfg.DBPath, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.metrics = metrics.NewService()
	a.store = roster.New(db, teardown, a.metrics)
	a.queries = query.New(a.store)
	return nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	a.store.Close()
	if a.cfg.MetricsTextfile != "" {
		if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
			log.Error("Failed to write metrics", "error", err)
		}
	}
	a.store = nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nhltracker",
		Short: "Track goals, assists and plus/minus for a hockey roster",
		Long: `nhltracker keeps a roster of player stat lines in a SQLite database.

Players are keyed by name, ignoring case. Points are always goals plus assists.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
	}
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to the roster database (overrides NHL_DB_PATH)")

	rootCmd.AddCommand(
		newAddCmd(a),
		newRemoveCmd(a),
		newUpdateCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newFilterCmd(a),
		newSortCmd(a),
		newImportCmd(a),
		newExportCmd(a),
	)
	return rootCmd
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
