package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amritr10/Reporter-app/config"
)

//nolint:gochecknoglobals // Global vars needed for cobra CLI
var (
	cfgFile string
	format  string
	outFile string
	cfg     *config.Config
	logger  *logrus.Logger
)

// rootCmd represents the base command
//
//nolint:gochecknoglobals // Cobra commands are typically global
var rootCmd = &cobra.Command{
	Use:   "reporter",
	Short: "Guest list reporter - RSVP checks and summaries for a wedding guest list",
	Long: `Reporter reads a guest list CSV exported from the RSVP site and reports
duplicate guests, guests who have not responded to any event, per-event
attendance and shuttle bus demand.`,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultPath+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: json, pretty, table, text, csv")
	rootCmd.PersistentFlags().StringVar(&outFile, "out", "", "write output to file instead of stdout")

	// Initialize logger
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func initConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil || logLevel == "" {
		logLevel = cfg.Logging
	}
	level, parseErr := logrus.ParseLevel(logLevel)
	if parseErr != nil {
		logger.WithError(parseErr).Warn("Invalid log level, defaulting to info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if format == "" {
		format = cfg.Format
	}
	if !config.ValidFormat(format) {
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
