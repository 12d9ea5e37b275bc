package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/fitcheck/internal/coach"
	"github.com/abhisek/fitcheck/internal/llm"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [id]",
	Short: "Ask the configured LLM for a coaching note on a saved report",
	Long: "Ask the configured LLM for a coaching note on a saved report (the latest by default).\n" +
		"Set FITCHECK_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY,\n" +
		"ANTHROPIC_API_KEY, OPENROUTER_API_KEY to enable it.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rep, err := findReport(cmd, s.ReportRepo(), args)
		if err != nil {
			return err
		}

		svc, model, err := newCoach(cmd.Context(), s.EventRepo(), logger)
		if err != nil {
			if errors.Is(err, llm.ErrNotConfigured) {
				return fmt.Errorf("coaching needs an LLM provider: %w", err)
			}
			return fmt.Errorf("create llm provider: %w", err)
		}

		logger.Info("requesting coaching note", "report", rep.ID, "model", model)
		note, err := svc.Explain(cmd.Context(), rep.Result, rep.Respondent)
		if err != nil {
			return fmt.Errorf("explain report %s: %w", shortID(rep.ID), err)
		}
		return coach.WriteText(cmd.OutOrStdout(), note)
	},
}
