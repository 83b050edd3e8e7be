// Package cli wires the polsched commands. Flags override config file values,
// which override built-in defaults.
package cli

import (
	"fmt"
	"os"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "polsched",
	Short: "Polsched - structured extraction of insurance policy schedules",
	Long: `Polsched converts loosely formatted insurance policy schedule documents
into typed, structured JSON records.

It extracts policyholder, policy and broker details, premium summaries,
line-of-business sections with their insured items, specified vehicles,
endorsements and excess structures, then validates the result.

Fields that are absent from the source are emitted as explicit nulls so
downstream consumers can tell "not applicable" from "not extracted".`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and extraction version for Polsched.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("polsched v%s\n", model.ExtractionVersion)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.polsched/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.polsched")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match POLSCHED_*
	viper.SetEnvPrefix("POLSCHED")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults, then config file
// and environment, then flags already bound into viper.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration: %v\n", err)
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	return cfg
}
