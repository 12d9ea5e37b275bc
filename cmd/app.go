package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/fitcheck/internal/app"
	"github.com/abhisek/fitcheck/internal/llm"
	sessionscreen "github.com/abhisek/fitcheck/internal/screens/session"
	"github.com/spf13/cobra"
)

func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	deps := sessionscreen.Deps{
		Catalog: cat,
		Reports: s.ReportRepo(),
		Logger:  logger,
	}

	status := "offline"
	svc, model, err := newCoach(ctx, s.EventRepo(), logger)
	switch {
	case err == nil:
		deps.Coach = svc
		status = "coach: " + model
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Info("coaching disabled", "reason", err)
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: coaching disabled: %v\n", err)
		logger.Warn("coaching disabled", "err", err)
	}

	skip, _ := cmd.Flags().GetBool("no-splash")
	logger.Info("starting app", "questions", cat.Len(), "status", status)
	return app.Run(ctx, app.Options{Deps: deps, Status: status, SkipSplash: skip})
}
