package main

import (
	"errors"
	"fmt"

	"github.com/mauv0809/nhl-tracker/internal/archive"
	"github.com/mauv0809/nhl-tracker/internal/cli"
	"github.com/mauv0809/nhl-tracker/internal/player"
	"github.com/mauv0809/nhl-tracker/internal/query"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME TEAM GOALS ASSISTS PLUS_MINUS",
		Short: "Add a player to the roster",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := playerFromArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.Status(a.store.Add(p), cli.MsgAdded, cli.MsgAddFailed))
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a player by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cli.Status(a.store.Remove(args[0]), cli.MsgRemoved, cli.MsgNotFound))
			return nil
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	var team, goals, assists, plusMinus string
	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a player's team or stats",
		Long: `Update a player's team or stats. Only the flags given are changed.
The player's name cannot be changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("team") && !flags.Changed("goals") && !flags.Changed("assists") && !flags.Changed("plus-minus") {
				return errors.New("nothing to update: pass at least one of --team, --goals, --assists, --plus-minus")
			}

			existing, ok := a.store.FindByName(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), cli.Failure(cli.MsgNotFound))
				return nil
			}

			var err error
			if flags.Changed("team") {
				if existing.Team, err = cli.ValidateLabel("Team name", team); err != nil {
					return err
				}
			}
			if flags.Changed("goals") {
				if existing.Goals, err = cli.ParseStat("Goals", goals); err != nil {
					return err
				}
			}
			if flags.Changed("assists") {
				if existing.Assists, err = cli.ParseStat("Assists", assists); err != nil {
					return err
				}
			}
			if flags.Changed("plus-minus") {
				if existing.PlusMinus, err = cli.ParseStat("Plus/Minus", plusMinus); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.Status(a.store.Update(existing), cli.MsgUpdated, cli.MsgNotFound))
			return nil
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "new team name")
	cmd.Flags().StringVar(&goals, "goals", "", "new goal total")
	cmd.Flags().StringVar(&assists, "assists", "", "new assist total")
	cmd.Flags().StringVar(&plusMinus, "plus-minus", "", "new plus/minus rating")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every player, ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cli.Heading("Viewing All Players"))
			fmt.Fprintln(cmd.OutOrStdout(), query.FormatList(a.store.GetAll()))
			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search NAME",
		Short: "Find a player by exact name, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := a.queries.SearchByName(args[0])
			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.Failure(cli.MsgSearchMissing))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.Success(cli.MsgFound))
			fmt.Fprintln(cmd.OutOrStdout(), found[0])
			return nil
		},
	}
}

func newFilterCmd(a *app) *cobra.Command {
	var goals, assists, points, team string
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter players by a minimum stat or by team",
		Long: `Filter players by one criterion:
  --goals N     players with at least N goals
  --assists N   players with at least N assists
  --points N    players with at least N points
  --team NAME   players on NAME, ignoring case`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				results []player.Player
				n       int
				err     error
			)
			flags := cmd.Flags()
			switch {
			case flags.Changed("goals"):
				if n, err = cli.ParseStat("Minimum goals", goals); err != nil {
					return err
				}
				results = a.queries.FilterByMinGoals(n)
			case flags.Changed("assists"):
				if n, err = cli.ParseStat("Minimum assists", assists); err != nil {
					return err
				}
				results = a.queries.FilterByMinAssists(n)
			case flags.Changed("points"):
				if n, err = cli.ParseStat("Minimum points", points); err != nil {
					return err
				}
				results = a.queries.FilterByMinPoints(n)
			case flags.Changed("team"):
				if _, err = cli.ValidateLabel("Team name", team); err != nil {
					return err
				}
				results = a.queries.FilterByTeam(team)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.Heading("Filtered Results"))
			fmt.Fprintln(cmd.OutOrStdout(), query.FormatList(results))
			return nil
		},
	}
	cmd.Flags().StringVar(&goals, "goals", "", "minimum goals")
	cmd.Flags().StringVar(&assists, "assists", "", "minimum assists")
	cmd.Flags().StringVar(&points, "points", "", "minimum points")
	cmd.Flags().StringVar(&team, "team", "", "team name")
	cmd.MarkFlagsMutuallyExclusive("goals", "assists", "points", "team")
	cmd.MarkFlagsOneRequired("goals", "assists", "points", "team")
	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	var by, team string
	var desc bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "List players ordered by goals, assists or points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := query.ParseSortField(by)
			if err != nil {
				return err
			}
			dir := query.Ascending
			if desc {
				dir = query.Descending
			}

			var sorted []player.Player
			if cmd.Flags().Changed("team") {
				sorted, err = query.Sort(a.queries.FilterByTeam(team), field, dir)
			} else {
				sorted, err = a.queries.SortBy(field, dir)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), query.FormatList(sorted))
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", string(query.SortByPoints), "stat to sort by: goals, assists or points")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort from highest to lowest")
	cmd.Flags().StringVar(&team, "team", "", "only sort players on this team")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add players from a roster file",
		Long: `Add every player from a roster file. Players whose name already exists are skipped.
The format is taken from --format or guessed from the file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, args[0])
			if err != nil {
				return err
			}
			players, err := archive.Load(args[0], f)
			if err != nil {
				return err
			}

			added, skipped := 0, 0
			for _, p := range players {
				if _, err := cli.ValidateLabel("Name", p.Name); err != nil {
					skipped++
					continue
				}
				if _, err := cli.ValidateLabel("Team name", p.Team); err != nil {
					skipped++
					continue
				}
				if a.store.Add(p) {
					added++
				} else {
					skipped++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d players, skipped %d.\n", added, skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "file format: text, msgpack or yaml")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the roster to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, args[0])
			if err != nil {
				return err
			}
			players := a.store.GetAll()
			if err := archive.Save(args[0], f, players); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d players to %s.\n", len(players), args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "file format: text, msgpack or yaml")
	return cmd
}

func playerFromArgs(args []string) (player.Player, error) {
	name, err := cli.ValidateLabel("Player name", args[0])
	if err != nil {
		return player.Player{}, err
	}
	team, err := cli.ValidateLabel("Team name", args[1])
	if err != nil {
		return player.Player{}, err
	}
	goals, err := cli.ParseStat("Goals", args[2])
	if err != nil {
		return player.Player{}, err
	}
	assists, err := cli.ParseStat("Assists", args[3])
	if err != nil {
		return player.Player{}, err
	}
	plusMinus, err := cli.ParseStat("Plus/Minus", args[4])
	if err != nil {
		return player.Player{}, err
	}
	return player.New(name, team, goals, assists, plusMinus), nil
}

func resolveFormat(flag, path string) (archive.Format, error) {
	if flag == "" {
		return archive.FormatFromPath(path), nil
	}
	return archive.ParseFormat(flag)
}
