package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Player statistics commands",
	}

	cmd.AddCommand(newEventsCmd("batting", "Pitch-level data for a batter"))
	cmd.AddCommand(newEventsCmd("pitching", "Pitch-level data for a pitcher"))
	cmd.AddCommand(newSeasonCmd())
	cmd.AddCommand(newPercentilesCmd())

	return cmd
}

// parsePlayerID validates a numeric MLBAM id argument
func parsePlayerID(raw string) (string, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return "", fmt.Errorf("invalid player id %q: must be a positive integer", raw)
	}
	return strconv.Itoa(id), nil
}

// setIf adds name to query when value is non-empty
func setIf(query url.Values, name, value string) {
	if value != "" {
		query.Set(name, value)
	}
}

func newEventsCmd(kind, short string) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   kind + " <player-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePlayerID(args[0])
			if err != nil {
				return err
			}

			query := url.Values{}
			setIf(query, "start_date", start)
			setIf(query, "end_date", end)
			var result Rows

			if err := client.Get(cmd.Context(), "/api/player/"+kind+"/"+id, query, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (requires --end)")
	cmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD (requires --start)")
	cmd.MarkFlagsRequiredTogether("start", "end")

	return cmd
}

func newSeasonCmd() *cobra.Command {
	var statType string
	var year int

	cmd := &cobra.Command{
		Use:   "season",
		Short: "Season leaderboard for batting or pitching",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			setIf(query, "type", strings.ToLower(statType))
			if year > 0 {
				query.Set("year", strconv.Itoa(year))
			}
			var result Rows

			if err := client.Get(cmd.Context(), "/api/player/season-stats", query, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&statType, "type", "batting", "Stat type: batting, pitching")
	cmd.Flags().IntVar(&year, "year", 0, "Season (default: current year)")

	return cmd
}

func newPercentilesCmd() *cobra.Command {
	var playerType string
	var year int

	cmd := &cobra.Command{
		Use:   "percentiles <player-id>",
		Short: "Statcast percentile rankings for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePlayerID(args[0])
			if err != nil {
				return err
			}

			query := url.Values{}
			setIf(query, "type", strings.ToLower(playerType))
			if year > 0 {
				query.Set("year", strconv.Itoa(year))
			}
			var result Rows

			if err := client.Get(cmd.Context(), "/api/player/percentile-rankings/"+id, query, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerType, "type", "batter", "Player type: batter, pitcher")
	cmd.Flags().IntVar(&year, "year", 0, "Season (default: current year)")

	return cmd
}

func newStandingsCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Division standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if year > 0 {
				query.Set("year", strconv.Itoa(year))
			}
			var result Standings

			if err := client.Get(cmd.Context(), "/api/standings", query, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Season (default: current year)")

	return cmd
}

func newScheduleCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:     "schedule <team>",
		Short:   "Schedule and results for a team",
		Example: "  statcli schedule NYY --year 2023",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if year > 0 {
				query.Set("year", strconv.Itoa(year))
			}
			var result Rows

			team := url.PathEscape(strings.ToUpper(args[0]))
			if err := client.Get(cmd.Context(), "/api/team/schedule/"+team, query, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Season (default: current year)")

	return cmd
}
