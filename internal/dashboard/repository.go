package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rukun/internal/genai"
	"rukun/internal/treasury"
)

type repo struct {
	db       *sql.DB
	gateway  genai.System
	treasury treasury.System
	logger   *slog.Logger
}

// New creates a dashboard system backed by the shared store and the
// treasury system for ledger totals.
func New(
	db *sql.DB,
	gateway genai.System,
	treasurySys treasury.System,
	logger *slog.Logger,
) System {
	return &repo{
		db:       db,
		gateway:  gateway,
		treasury: treasurySys,
		logger:   logger.With("system", "dashboard"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Stats runs the aggregate queries concurrently; each query is independent
// and read-only against the shared store.
func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := `
			SELECT
				COUNT(*),
				COALESCE(SUM(CASE WHEN gender = 'Laki-laki' THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN gender = 'Perempuan' THEN 1 ELSE 0 END), 0)
			FROM citizens`
		if err := r.db.QueryRowContext(ctx, q).Scan(
			&stats.TotalCitizens,
			&stats.MaleCount,
			&stats.FemaleCount,
		); err != nil {
			return fmt.Errorf("count citizens: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		bands, err := r.ageBands(ctx)
		if err != nil {
			return err
		}
		stats.AgeBands = bands
		return nil
	})

	g.Go(func() error {
		if err := r.db.QueryRowContext(
			ctx, "SELECT COUNT(*) FROM family_cards",
		).Scan(&stats.FamilyCount); err != nil {
			return fmt.Errorf("count family cards: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := r.db.QueryRowContext(
			ctx, "SELECT COUNT(*) FROM letters WHERE content IS NULL",
		).Scan(&stats.PendingLetters); err != nil {
			return fmt.Errorf("count pending letters: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		summary, err := r.treasury.Summarize(ctx)
		if err != nil {
			return err
		}
		stats.Finance = *summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repo) Insight(ctx context.Context) (string, error) {
	stats, err := r.Stats(ctx)
	if err != nil {
		return "", err
	}

	return r.gateway.GenerateDemographicInsight(ctx, stats.demographic()), nil
}

func (r *repo) ageBands(ctx context.Context) ([]genai.AgeBand, error) {
	q := `
		SELECT
			COALESCE(SUM(CASE WHEN age < 13 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN age >= 13 AND age < 20 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN age >= 20 AND age < 60 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN age >= 60 THEN 1 ELSE 0 END), 0)
		FROM (
			SELECT CAST(strftime('%Y', 'now') AS INTEGER) - CAST(substr(dob, 1, 4) AS INTEGER) AS age
			FROM citizens
			WHERE length(dob) >= 4
		)`

	var anak, remaja, dewasa, lansia int
	if err := r.db.QueryRowContext(ctx, q).Scan(&anak, &remaja, &dewasa, &lansia); err != nil {
		return nil, fmt.Errorf("count age bands: %w", err)
	}

	return []genai.AgeBand{
		{Name: bandAnak, Value: anak},
		{Name: bandRemaja, Value: remaja},
		{Name: bandDewasa, Value: dewasa},
		{Name: bandLansia, Value: lansia},
	}, nil
}
