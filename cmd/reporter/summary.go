package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amritr10/Reporter-app/engine"
)

//nolint:gochecknoglobals // Cobra flags are typically global
var summaryFile string

//nolint:gochecknoglobals // Cobra commands are typically global
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize attendance per event and shuttle bus demand",
	Long: `Summary reports invited, expected, accepted, declined and unanswered
counts for every configured event, then the shuttle bus tallies.
With --format json the full report is written, preview included.`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&summaryFile, "file", "f", "", "guest list CSV (required)")
	_ = summaryCmd.MarkFlagRequired("file")
}

func runSummary(_ *cobra.Command, _ []string) error {
	parsed, err := loadGuestList(summaryFile)
	if err != nil {
		return err
	}

	report := engine.Analyze(parsed.Snapshot, cfg.EngineOptions(logger)...)

	notes := []string{shuttleNote(report.Shuttle)}
	notes = append(notes, warningNotes(report.Warnings)...)

	return writeOutput(output{
		payload: report,
		text:    engine.BuildSummaryText(report),
		tables: []*engine.TableData{
			engine.BuildMetricsTable(report.Events),
			engine.BuildRecordTable("Preview", report.Preview, parsed.Snapshot.Columns()),
		},
		notes: notes,
	})
}

func shuttleNote(s engine.ShuttleSummary) string {
	if s.Skipped {
		return fmt.Sprintf("Shuttle Bus: %d guests tagged (transportation replies unavailable)", s.Tagged)
	}
	return fmt.Sprintf("Shuttle Bus: %d guests tagged, %d potential individuals, %d eligible after declines",
		s.Tagged, s.Requested, s.Eligible)
}
