package cli

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultServerURL = "http://localhost:9090"
	envServerURL     = "TICTACTOE_SERVER"
)

type options struct {
	serverURL string
	output    string

	client *Client
}

// NewRootCmd - builds the tictactoe command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{
		serverURL: defaultServerURL,
		output:    "text",
	}
	if env := os.Getenv(envServerURL); env != "" {
		opts.serverURL = env
	}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe game server and statistics client",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			opts.client = NewClient(opts.serverURL)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.serverURL, "server", opts.serverURL, "Server URL (env: "+envServerURL+")")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", opts.output, "Output format: text, json")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newRecordCmd(opts))

	return rootCmd
}
