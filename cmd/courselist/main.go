// Package main provides the CLI entry point for courselist.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/courselist-go/internal/config"
	"github.com/ukaji3/courselist-go/internal/logging"
	"github.com/ukaji3/courselist-go/pkg/courselist"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "courselist",
		Short: "Generate course participant lists from registration sheets",
		Long: `courselist reads participant rows from a registration workbook (.xlsx or .ods),
keeps the rows that carry a value in the grouping column and writes a sorted
contact list as CSV, xlsx or JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from COURSELIST_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default from COURSELIST_LOG_FORMAT)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newSheetsCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	level, format := env.LogLevel, env.LogFormat
	if logLevel != "" {
		level = logLevel
	}
	if logFormat != "" {
		format = logFormat
	}

	logging.Setup(cmd.ErrOrStderr(), level, format)
	return nil
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input]",
		Short: "List the sheets of a workbook with their used ranges",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}
}

func runSheets(cmd *cobra.Command, args []string) error {
	path, err := config.ExpandPath(args[0])
	if err != nil {
		return err
	}

	sheets, err := courselist.ListSheets(path)
	if err != nil {
		return fmt.Errorf("failed to list sheets: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, s := range sheets {
		if s.UsedRange == "" {
			fmt.Fprintf(out, "%s\t(empty)\n", s.Name)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", s.Name, s.UsedRange)
	}
	return nil
}
