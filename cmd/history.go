package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/fitcheck/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved assessment reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		keep, _ := cmd.Flags().GetInt("keep")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if keep > 0 {
			n, err := s.ReportRepo().Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			logger.Info("reports pruned", "keep", keep, "deleted", n)
			fmt.Fprintf(cmd.ErrOrStderr(), "pruned %d old report(s)\n", n)
		}

		reports, err := s.ReportRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No saved reports.")
			return nil
		}

		fmt.Fprintf(out, "%-8s  %-16s  %-20s  %-5s  %7s  %10s\n",
			"ID", "Date", "Name", "Fit", "Overall", "Confidence")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, r := range reports {
			name := r.Respondent
			if name == "" {
				name = "anonymous"
			}
			fmt.Fprintf(out, "%-8s  %-16s  %-20s  %-5s  %7d  %10d\n",
				shortID(r.ID),
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(name, 20),
				r.Result.Recommendation,
				r.Result.OverallScore,
				r.Result.ConfidenceScore,
			)
		}
		return nil
	},
}

// shortID returns the first eight characters of a report id, enough to
// address it with `fitcheck report`.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of reports to show")
	historyCmd.Flags().Int("keep", 0, "Delete all but the N most recent reports first")
}
