package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goshell/gosh/core/config"
)

// initCmd writes the default configuration so users have something to edit.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dest, err := config.Initialize(afero.NewOsFs(), cfgPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
