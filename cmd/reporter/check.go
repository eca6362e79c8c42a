package main

import (
	"github.com/spf13/cobra"

	"github.com/amritr10/Reporter-app/engine"
)

//nolint:gochecknoglobals // Cobra flags are typically global
var checkFile string

//nolint:gochecknoglobals // Cobra commands are typically global
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run data checks: duplicate guests and guests with no RSVP",
	Long: `Check lists guests whose First and Last Name appear more than once, and
guests who have not responded to any event along with a ready-to-send
outreach message. With --format csv the follow-up list is written.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "guest list CSV (required)")
	_ = checkCmd.MarkFlagRequired("file")
}

type checkOutput struct {
	Records      int                    `json:"records"`
	Duplicates   engine.DuplicateReport `json:"duplicates"`
	MissingRSVPs engine.MissingReport   `json:"missingRsvps"`
	Warnings     []engine.Warning       `json:"warnings"`
}

func runCheck(_ *cobra.Command, _ []string) error {
	parsed, err := loadGuestList(checkFile)
	if err != nil {
		return err
	}

	report := engine.Analyze(parsed.Snapshot, cfg.EngineOptions(logger)...)
	cols := parsed.Snapshot.Columns()

	return writeOutput(output{
		payload: checkOutput{
			Records:      report.Records,
			Duplicates:   report.Duplicates,
			MissingRSVPs: report.MissingRSVPs,
			Warnings:     report.Warnings,
		},
		text: engine.BuildSummaryText(report),
		tables: []*engine.TableData{
			engine.BuildMissingTable(report.MissingRSVPs.Guests, cols),
			engine.BuildRecordTable("Duplicate guests", report.Duplicates.Records, cols),
		},
		notes: warningNotes(report.Warnings),
	})
}
