// Package session holds the screens of one assessment run: intake, the
// question flow and the results view.
package session

import (
	"context"
	"log/slog"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/coach"
	"github.com/abhisek/fitcheck/internal/scoring"
	"github.com/abhisek/fitcheck/internal/store"
)

// Explainer writes a coaching note for a result. *coach.Service satisfies it.
type Explainer interface {
	Explain(ctx context.Context, result *scoring.Result, respondent string) (*coach.Note, error)
}

// Deps are the collaborators shared by the assessment screens. Reports and
// Coach may be nil; the screens then skip saving and coaching.
type Deps struct {
	Catalog *catalog.Catalog
	Reports store.ReportRepo
	Coach   Explainer
	Logger  *slog.Logger
}

// Log returns the configured logger or one that discards.
func (d Deps) Log() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
