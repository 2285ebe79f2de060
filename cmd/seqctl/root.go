package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/seqkit/seq/report"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool
	jsonOut bool

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "seqctl",
	Short: "Trace and replay seqkit vector operations",
	Long: `seqctl drives seqkit vectors from the command line. It traces capacity
growth, replays scripted operation sequences (including injected failures to
show rollback) and measures relocation cost per append.

Configuration is read from flags, SEQCTL_* environment variables and an
optional .seqctl.yaml file, in that order of precedence.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			report.Set(nil)
			logCloser.Close()
			logCloser = nil
		}
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .seqctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("log-dir", "", "Write JSON failure logs to this directory")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("provider", "heap", "Storage provider (heap, arena, mmap)")
	rootCmd.PersistentFlags().Int("arena-slots", 1<<16, "Slab size for the arena provider")

	for _, name := range []string{"log-dir", "log-level", "provider", "arena-slots"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig wires SEQCTL_* environment variables and the optional config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".seqctl")
	}
	viper.SetEnvPrefix("SEQCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		printVerbose("Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// initLogging points the seqkit report sink at a dated file when --log-dir is set.
func initLogging() error {
	dir := viper.GetString("log-dir")
	if dir == "" {
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	c, err := report.Init(&report.Options{Enabled: true, LogDir: dir, Level: level})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	logCloser = c
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(rootCmd.OutOrStdout(), format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(rootCmd.OutOrStdout(), format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(rootCmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
