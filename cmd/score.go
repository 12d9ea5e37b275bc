package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/fitcheck/internal/report"
	"github.com/abhisek/fitcheck/internal/session"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer file without the interactive app",
	Long: "Score a YAML answer file of the form\n\n" +
		"  answers:\n" +
		"    - id: int-1\n" +
		"      value: 5\n" +
		"    - id: per-4\n" +
		"      value: Mix of clinical and technical environments\n\n" +
		"Use --answers - to read from stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")
		name, _ := cmd.Flags().GetString("name")

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		inputs, err := readAnswers(cmd, path)
		if err != nil {
			return err
		}

		sess := session.New(cat)
		if err := report.Apply(sess, inputs); err != nil {
			return err
		}
		if !sess.AllAnswered() {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d of %d questions unanswered; they count as zero\n",
				sess.Total()-sess.Answered(), sess.Total())
		}

		res, err := sess.Complete()
		if err != nil {
			return err
		}
		logger.Info("answers scored", "session", sess.ID(), "answered", sess.Answered(),
			"recommendation", res.Recommendation, "overall", res.OverallScore)

		if save {
			if err := saveSession(cmd, sess, name); err != nil {
				return err
			}
		}

		if asJSON {
			return report.WriteJSON(cmd.OutOrStdout(), res)
		}
		return report.WriteText(cmd.OutOrStdout(), res)
	},
}

func readAnswers(cmd *cobra.Command, path string) ([]report.AnswerInput, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open answers: %w", err)
		}
		defer f.Close()
		r = f
	}
	return report.ParseAnswers(r)
}

func saveSession(cmd *cobra.Command, sess *session.Session, name string) error {
	rec, err := report.Record(sess, name)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ReportRepo().Save(cmd.Context(), rec); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved report %s\n", shortID(rec.ID))
	return nil
}

func init() {
	scoreCmd.Flags().StringP("answers", "a", "", "YAML answer file (- for stdin)")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	scoreCmd.Flags().Bool("save", false, "Save the report to history")
	scoreCmd.Flags().String("name", "", "Respondent name stored with a saved report")
	_ = scoreCmd.MarkFlagRequired("answers")
}
