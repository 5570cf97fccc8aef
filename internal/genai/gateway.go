// Package genai implements the gateway to the Gemini generateContent API.
// It owns the four model-backed operations (citizen extraction, financial
// insight, letter drafting, demographic insight) and their failure policy:
// every operation is single-shot, runs under an explicit timeout, and
// degrades to an empty or fallback value rather than surfacing transport
// or decode errors to its caller.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rukun/pkg/formatting"
)

// maxSnapshotTransactions bounds how many ledger entries are serialized
// into the financial insight prompt.
const maxSnapshotTransactions = 5

// System defines the public contract for model-backed operations. Methods
// never return errors; failures collapse to the documented fallback values.
type System interface {
	// ExtractCitizenRecord parses free-form citizen/KTP text into a
	// structured record. Blank input short-circuits without a model call.
	ExtractCitizenRecord(ctx context.Context, text string) ExtractionResult

	// GenerateFinancialInsight produces a short Indonesian commentary on
	// the ledger snapshot, or FinancialInsightFallback on failure.
	GenerateFinancialInsight(ctx context.Context, snapshot FinancialSnapshot) string

	// GenerateLetterBody drafts a formal letter body. The second return is
	// false when no body could be generated.
	GenerateLetterBody(ctx context.Context, letterType, citizenName, purpose string) (string, bool)

	// GenerateDemographicInsight produces a short Indonesian commentary on
	// the neighborhood profile, or DemographicInsightFallback on failure.
	GenerateDemographicInsight(ctx context.Context, stats DemographicStats) string
}

type gateway struct {
	client  *client
	logger  *slog.Logger
	cfg     *Config
	timeout time.Duration
}

// New creates the gateway from its configuration. No connection is made
// until an operation runs.
func New(cfg *Config, logger *slog.Logger) System {
	return &gateway{
		client:  newClient(cfg.BaseURL, cfg.APIKey),
		logger:  logger.With("system", "genai"),
		cfg:     cfg,
		timeout: cfg.TimeoutDuration(),
	}
}

func (g *gateway) ExtractCitizenRecord(ctx context.Context, text string) ExtractionResult {
	if strings.TrimSpace(text) == "" {
		return ExtractionResult{Status: ExtractionEmpty}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(extractionPrompt, text)
	out, err := g.client.generate(ctx, g.cfg.ExtractionModel, prompt, &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   citizenRecordSchema,
	})
	if err != nil {
		g.logger.Warn("citizen extraction failed", "reason", reasonFor(err), "error", err)
		return emptyResult(reasonFor(err))
	}

	record, err := formatting.Parse[CitizenRecord](out)
	if err != nil {
		g.logger.Warn("citizen extraction undecodable", "error", err)
		return emptyResult(ReasonDecode)
	}

	return recordResult(record)
}

func (g *gateway) GenerateFinancialInsight(ctx context.Context, snapshot FinancialSnapshot) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	recent := snapshot.Recent
	if len(recent) > maxSnapshotTransactions {
		recent = recent[:maxSnapshotTransactions]
	}
	lines, err := json.Marshal(recent)
	if err != nil {
		g.logger.Warn("financial snapshot serialization failed", "error", err)
		return FinancialInsightFallback
	}

	prompt := fmt.Sprintf(
		financialInsightPrompt,
		snapshot.Balance,
		snapshot.TotalIncome,
		snapshot.TotalExpense,
		lines,
	)

	out, err := g.client.generate(ctx, g.cfg.InsightModel, prompt, nil)
	if err != nil {
		g.logger.Warn("financial insight failed", "reason", reasonFor(err), "error", err)
		return FinancialInsightFallback
	}
	return out
}

func (g *gateway) GenerateLetterBody(ctx context.Context, letterType, citizenName, purpose string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(letterBodyPrompt, letterType, citizenName, purpose)
	temperature := g.cfg.LetterTemperature

	out, err := g.client.generate(ctx, g.cfg.LetterModel, prompt, &generationConfig{
		Temperature: &temperature,
	})
	if err != nil {
		g.logger.Warn("letter body generation failed", "reason", reasonFor(err), "error", err)
		return "", false
	}
	return out, true
}

func (g *gateway) GenerateDemographicInsight(ctx context.Context, stats DemographicStats) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	payload, err := json.Marshal(stats)
	if err != nil {
		g.logger.Warn("demographic stats serialization failed", "error", err)
		return DemographicInsightFallback
	}

	prompt := fmt.Sprintf(demographicInsightPrompt, payload)

	out, err := g.client.generate(ctx, g.cfg.InsightModel, prompt, nil)
	if err != nil {
		g.logger.Warn("demographic insight failed", "reason", reasonFor(err), "error", err)
		return DemographicInsightFallback
	}
	return out
}

func reasonFor(err error) Reason {
	if errors.Is(err, ErrDecode) {
		return ReasonDecode
	}
	return ReasonTransport
}
