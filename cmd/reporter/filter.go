package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amritr10/Reporter-app/engine"
)

//nolint:gochecknoglobals // Cobra flags are typically global
var (
	filterFile     string
	filterEvents   []string
	filterStatuses []string
	filterShuttle  bool
)

//nolint:gochecknoglobals // Cobra commands are typically global
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List guests matching event, response and shuttle filters",
	Long: `Filter selects guests invited to any of the given events, whose response
to those events is one of the given statuses, optionally restricted to
parties eligible for the shuttle bus. No filters lists everyone.`,
	Example: `  reporter filter -f guests.csv --event Wedding --status Unanswered
  reporter filter -f guests.csv --shuttle --format csv --out shuttle.csv`,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().StringVarP(&filterFile, "file", "f", "", "guest list CSV (required)")
	filterCmd.Flags().StringSliceVar(&filterEvents, "event", nil, "event name; repeat or comma-separate for several")
	filterCmd.Flags().StringSliceVar(&filterStatuses, "status", nil, "Accepted, Declined or Unanswered")
	filterCmd.Flags().BoolVar(&filterShuttle, "shuttle", false, "only parties eligible for the shuttle bus")
	_ = filterCmd.MarkFlagRequired("file")
}

func runFilter(_ *cobra.Command, _ []string) error {
	params := engine.FilterParams{
		Events:      filterEvents,
		ShuttleOnly: filterShuttle,
	}
	for _, raw := range filterStatuses {
		status, err := engine.ParseStatus(raw)
		if err != nil {
			return err
		}
		params.Statuses = append(params.Statuses, status)
	}

	parsed, err := loadGuestList(filterFile)
	if err != nil {
		return err
	}

	result, err := engine.ApplyFilters(parsed.Snapshot, params, cfg.EngineOptions(logger)...)
	if err != nil {
		return err
	}

	table := engine.BuildRecordTable("Filtered guests", result.Records, parsed.Snapshot.Columns())
	text := []string{fmt.Sprintf("Matched %d of %d guests", result.Matched, result.Total)}
	for _, w := range result.Warnings {
		text = append(text, "Warning: "+engine.FormatWarning(w))
	}

	return writeOutput(output{
		payload: result,
		text:    text,
		tables:  []*engine.TableData{table},
		notes:   append([]string{text[0]}, warningNotes(result.Warnings)...),
	})
}
