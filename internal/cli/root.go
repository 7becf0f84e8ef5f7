// Package cli implements the datasourcegen command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/aicoach/datasourcegen/internal/config"
	"github.com/aicoach/datasourcegen/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	flagOutput    string
	flagLogLevel  string
	flagLogFormat string
	flagStrict    bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "datasourcegen",
	Short: "Generate placeholder datasource files for the AI coach",
	Long: "Datasourcegen renders the built-in datasource templates (daily reports, " +
		"Jira data, meeting transcripts) into per-member and team files, substituting " +
		"{{TOKEN}} placeholders along the way.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			cfg.OutputDir = flagOutput
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = flagLogLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = flagLogFormat
		}
		if cmd.Flags().Changed("strict") {
			cfg.Strict = flagStrict
		}
		logging.Setup(cfg.Log.Level, cfg.Log.Format)
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./datasourcegen.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output directory for generated files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "fail on unresolved {{TOKEN}} placeholders")
}

// GetConfig returns the configuration loaded for the current invocation.
func GetConfig() *config.Config {
	return appConfig
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
