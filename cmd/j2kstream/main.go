package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbose int
	var logPath string

	rootCmd := &cobra.Command{
		Use:          "j2kstream",
		Short:        "Streaming JPEG 2000 codestream inspector",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logPath != "" {
				path = &logPath
			}
			commonlog.Configure(verbose, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newRangeCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openInput opens name for reading, with "-" meaning standard input.
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
