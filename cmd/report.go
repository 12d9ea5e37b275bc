package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/fitcheck/internal/report"
	"github.com/abhisek/fitcheck/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [id]",
	Short: "Show a saved report (the latest by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rep, err := findReport(cmd, s.ReportRepo(), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return report.WriteJSON(out, rep.Result)
		}

		name := rep.Respondent
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(out, "Report %s  %s  %s  (%d answered)\n\n",
			shortID(rep.ID), rep.Timestamp.Local().Format("2006-01-02 15:04"), name, rep.Answered)
		return report.WriteText(out, rep.Result)
	},
}

// findReport resolves an optional id prefix argument to a saved report.
func findReport(cmd *cobra.Command, reports store.ReportRepo, args []string) (*store.Report, error) {
	ctx := cmd.Context()
	if len(args) == 0 {
		rep, err := reports.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("latest report: %w", err)
		}
		if rep == nil {
			return nil, errors.New("no saved reports yet; run fitcheck to take the assessment")
		}
		return rep, nil
	}

	rep, err := reports.Get(ctx, args[0])
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	if rep == nil {
		return nil, fmt.Errorf("report %q not found", args[0])
	}
	return rep, nil
}

func init() {
	reportCmd.Flags().Bool("json", false, "Print the result as JSON")
}
