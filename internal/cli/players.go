package cli

import (
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player search commands",
	}

	cmd.AddCommand(newPlayersSearchCmd())
	cmd.AddCommand(newPlayersIndexCmd())

	return cmd
}

func newPlayersSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search players by name",
		Example: `  statcli players search trout
  statcli players search "mike tr"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{"name": {strings.Join(args, " ")}}
			result := []Player{}

			if err := client.Get(cmd.Context(), "/api/players/search", query, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPlayersIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Show player index status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result IndexStatus

			if err := client.Get(cmd.Context(), "/api/players/index", nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
