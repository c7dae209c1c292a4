package cli

import (
	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Response cache commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Flush cached upstream responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CacheCleared

			if err := client.Post(cmd.Context(), "/api/cache/clear", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
