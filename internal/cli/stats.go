package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show wins, losses and draws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var stats entity.StatsSnapshot
			if err := opts.client.Get(cmd.Context(), "/api/stats", &stats); err != nil {
				return err
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), stats)
			}

			printStats(cmd.OutOrStdout(), &stats)
			return nil
		},
	}
}

func printStats(w io.Writer, stats *entity.StatsSnapshot) {
	fmt.Fprintf(w, "%-6s %6s %6s\n", "", "wins", "losses")
	for _, mark := range entity.Marks() {
		fmt.Fprintf(w, "%-6s %6d %6d\n", mark, stats.Wins[mark], stats.Losses[mark])
	}
	fmt.Fprintf(w, "draws: %d\n", stats.Draws)
}

func printJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
