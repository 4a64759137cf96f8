package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goshell/gosh/core/config"
	"github.com/goshell/gosh/core/history"
	"github.com/goshell/gosh/core/session"
	"github.com/goshell/gosh/core/shell"
)

var (
	cfgPath     string
	commandLine string
)

// loadConfig reads the configuration, falling back to the built-in
// defaults when none has been initialized yet.
func loadConfig(fs afero.Fs) *config.Config {
	cfg, err := config.Load(fs, cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("config: %v (using defaults)", err)
		}
		return config.Default()
	}
	return cfg
}

// rootCmd represents the base command when called without any subcommands:
// an interactive shell session.
var rootCmd = &cobra.Command{
	Use:   "gosh",
	Short: "A small interactive command interpreter.",
	Long: `An interactive command interpreter with I/O redirection, background
execution and a persisted command history supporting !N and !prefix recall.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fs := afero.NewOsFs()
		cfg := loadConfig(fs)
		sess := session.New(fs, cfg)

		// A missing history file is the normal first-run case; anything
		// else is reported but never fatal.
		histPath := cfg.HistoryPath()
		store, err := history.Load(fs, histPath, cfg.HistorySize)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("history: %v", err)
		}
		sess.History = store

		sh, err := shell.New(sess)
		if err != nil {
			return err
		}

		var status int
		if commandLine != "" {
			sh.RunLine(commandLine)
			status = sess.LastStatus()
		} else {
			status = sh.Run()
		}
		sh.Close()

		if err := history.Save(fs, histPath, sess.History); err != nil {
			log.Printf("history: failed to save: %v", err)
		}

		if status != 0 {
			os.Exit(status)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultDir(), "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit")
}
