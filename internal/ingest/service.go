package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/puckwatch/puckwatch/internal/adapter"
	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/logger"
	"github.com/puckwatch/puckwatch/internal/providers/nhl"
	"github.com/puckwatch/puckwatch/internal/store"
)

// Service runs one ingestion pass: fetch a day of scores, normalize them,
// and reconcile them into the store with a fetch log per run.
type Service struct {
	clock  adapter.Clock
	client nhl.Client
	store  store.Store
}

// NewService creates a new ingestion service
func NewService(clock adapter.Clock, client nhl.Client, st store.Store) *Service {
	return &Service{
		clock:  clock,
		client: client,
		store:  st,
	}
}

// ResolveDate parses an optional YYYY-MM-DD argument, defaulting to today.
// The result is always midnight UTC of the calendar date so every run for
// the same date carries the same instant, regardless of how the date was
// supplied or the local timezone.
func (s *Service) ResolveDate(arg string) (time.Time, error) {
	if arg == "" {
		return domain.ParseGameDate(domain.FormatGameDate(s.clock.Now()))
	}
	date, err := domain.ParseGameDate(arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, arg)
	}
	return date, nil
}

// Run fetches and reconciles one calendar date. Every run leaves exactly one
// fetch log row: transport and storage failures are recorded as a failed run
// before the error is returned.
func (s *Service) Run(ctx context.Context, date time.Time) (*store.ReconcileGameDayResult, error) {
	runID := uuid.New()
	sourceURL := s.client.ScoreURL(date)

	logger.InfoCtx(ctx, "fetching scores",
		zap.String("run_id", runID.String()),
		zap.String("url", sourceURL))

	response, err := s.client.GetScores(ctx, date)
	if err != nil {
		s.logFailure(ctx, runID, date, sourceURL, err)
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}

	games := make([]store.GameInput, 0, len(response.Games))
	malformed := 0
	for _, g := range response.Games {
		input, err := nhl.MapGame(g)
		if err != nil {
			logger.WarnCtx(ctx, "skipping malformed game",
				zap.String("run_id", runID.String()),
				zap.Error(err))
			malformed++
			continue
		}
		games = append(games, *input)
	}

	result, err := s.store.ReconcileGameDay(ctx, store.ReconcileGameDayInput{
		RunID:     runID,
		FetchDate: date,
		SourceURL: sourceURL,
		Games:     games,
	})
	if err != nil {
		s.logFailure(ctx, runID, date, sourceURL, err)
		return nil, fmt.Errorf("failed to reconcile games: %w", err)
	}
	result.Skipped += malformed

	logger.InfoCtx(ctx, "reconciled game day",
		zap.String("run_id", runID.String()),
		zap.String("date", domain.FormatGameDate(date)),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

// logFailure records a failed run. The fetch log is best-effort here: a
// failing log write must not mask the run error.
func (s *Service) logFailure(ctx context.Context, runID uuid.UUID, date time.Time, sourceURL string, runErr error) {
	message := runErr.Error()
	if err := s.store.CreateFetchLog(ctx, store.CreateFetchLogInput{
		RunID:        runID,
		FetchDate:    date,
		Success:      false,
		ErrorMessage: &message,
		SourceURL:    sourceURL,
	}); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("run_id", runID.String()))
	}
}
