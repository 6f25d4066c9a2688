// Package cmd provides the command-line interface for praxis with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--format, --lesson, etc.) - highest priority
//	2. PRAXIS_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (PRAXIS_OUTPUT_FORMAT, etc.)
//	4. Configuration files (.praxis.yml) - lowest priority
//
// Environment Variables:
//
//	PRAXIS_CONFIG_FILE: Path to custom configuration file
//	PRAXIS_OUTPUT_FORMAT: Override report format
//	PRAXIS_LOG_LEVEL: Override log level
//	And more following the PRAXIS_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// Bare `praxis` runs the whole catalog, like `praxis run`.
var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "Run course example catalogs with pass/fail expectations",
	Long: `Praxis organizes named course demonstration units into lessons,
runs a selected subset, and reports each unit's outcome against its
declared expectation - including the demonstrations that are supposed
to fail.

Quick Start:
  praxis                          Run every lesson and summarize
  praxis run --lesson ownership   Run one lesson
  praxis list                     List lessons
  praxis watch --notes ./notes    Re-run when note overlays change

Command Aliases (for faster typing):
  run (r), list (l), watch (w)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Assigned here rather than in the composite literal: runRun inspects
	// rootCmd to pick its flag set, and a literal reference would make the
	// two initializers depend on each other.
	rootCmd.RunE = runRun

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .praxis.yml, can also use PRAXIS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	addRunFlags(rootCmd)
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. PRAXIS_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .praxis.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PRAXIS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".praxis")
	}

	// Enable automatic environment variable binding with PRAXIS_ prefix.
	// Examples: PRAXIS_OUTPUT_FORMAT, PRAXIS_NOTES_DIR, PRAXIS_LOG_LEVEL
	viper.SetEnvPrefix("PRAXIS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or unreadable config file is not fatal; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
