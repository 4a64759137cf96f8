package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goshell/gosh/core/history"
)

// historyCmd dumps the persisted history without starting a session.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the persisted command history.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fs := afero.NewOsFs()
		cfg := loadConfig(fs)

		store, err := history.Load(fs, cfg.HistoryPath(), cfg.HistorySize)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, e := range store.Entries() {
			fmt.Fprintf(w, "%5d  %s  [%d]  %s\n",
				i+1, e.Timestamp.Format("2006-01-02 15:04:05"), e.ExitCode, e.Command)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
