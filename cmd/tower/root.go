// Root command for the tower CLI.
package main

import (
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tower/internal/paths"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Loaded by PersistentPreRunE so every subcommand sees the same config.
var (
	config        *viper.Viper
	configDirPath string
)

var rootCmd = &cobra.Command{
	Use:   "tower",
	Short: "Tower records airport traffic and classifies passengers by age",
	Long: `Tower keeps flights, passengers and transit counts for a set of airports,
summarises them in a dashboard, and grades passengers into fuzzy age brackets
(Young, Adult, Senior by default; configurable in config.yaml).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return sysError(err)
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return sysError(err)
		}
		config = cfg
		configDirPath = configDir
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: per-user config dir, or $TOWER_CONFIG_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.tower-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log backend activity to the console")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(flightCmd)
	rootCmd.AddCommand(passengerCmd)
	rootCmd.AddCommand(transitCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(seedCmd)
}

// resolveDataDir applies --data-dir > config.yaml data_dir > TOWER_DATA_DIR >
// $(CWD)/.tower-db.
func resolveDataDir() (string, error) {
	configValue := ""
	if config != nil {
		configValue = config.GetString(cfgKeyDataDir)
	}
	return paths.ResolveDataDir(flagDataDir, configValue)
}

// newLogger returns the console logger under --verbose and a silent one
// otherwise.
func newLogger() l.Wrapper {
	if flagVerbose {
		return l.NewConsoleLoggerWrapper()
	}
	return l.NewNopLoggerWrapper()
}
