package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

type messageResponse struct {
	Message string `json:"message"`
}

func newRecordCmd(opts *options) *cobra.Command {
	var (
		winner string
		draw   bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record the result of a finished game",
		Example: `  tictactoe record --winner X
  tictactoe record --draw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := entity.NewDrawResult()
			if !draw {
				result = entity.NewWinResult(entity.Mark(winner))
			}

			if err := result.Validate(); err != nil {
				return err
			}

			var resp messageResponse
			if err := opts.client.Post(cmd.Context(), "/api/saveGame", result, &resp); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winning mark (X or O); the other mark loses")
	cmd.Flags().BoolVar(&draw, "draw", false, "Record a draw")
	cmd.MarkFlagsMutuallyExclusive("winner", "draw")
	cmd.MarkFlagsOneRequired("winner", "draw")

	return cmd
}
