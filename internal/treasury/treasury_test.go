package treasury_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rukun/internal/genai"
	"rukun/internal/treasury"
	"rukun/pkg/database"
	"rukun/pkg/pagination"
)

// Seed ledger: income 2500000 + 1000000 + 1200000, expense 450000 + 750000.
const (
	seedIncome  = 4700000
	seedExpense = 1200000
	seedBalance = seedIncome - seedExpense
)

// stubGateway records the snapshot handed to insight generation.
type stubGateway struct {
	insight      string
	lastSnapshot *genai.FinancialSnapshot
}

func (s *stubGateway) ExtractCitizenRecord(context.Context, string) genai.ExtractionResult {
	return genai.ExtractionResult{Status: genai.ExtractionEmpty}
}

func (s *stubGateway) GenerateFinancialInsight(_ context.Context, snapshot genai.FinancialSnapshot) string {
	s.lastSnapshot = &snapshot
	return s.insight
}

func (s *stubGateway) GenerateLetterBody(context.Context, string, string, string) (string, bool) {
	return "", false
}

func (s *stubGateway) GenerateDemographicInsight(context.Context, genai.DemographicStats) string {
	return ""
}

func newSystem(t *testing.T, name string, gw *stubGateway) treasury.System {
	t.Helper()

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if gw == nil {
		gw = &stubGateway{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return treasury.New(db, gw, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func TestSummarize(t *testing.T) {
	sys := newSystem(t, "treasury_summarize", nil)

	s, err := sys.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if s.TotalIncome != seedIncome {
		t.Errorf("TotalIncome = %d, want %d", s.TotalIncome, seedIncome)
	}
	if s.TotalExpense != seedExpense {
		t.Errorf("TotalExpense = %d, want %d", s.TotalExpense, seedExpense)
	}
	if s.Balance != seedBalance {
		t.Errorf("Balance = %d, want %d", s.Balance, seedBalance)
	}
}

func TestList(t *testing.T) {
	sys := newSystem(t, "treasury_list", nil)
	ctx := context.Background()

	t.Run("default sort is newest first", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{}, treasury.Filters{})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 5 {
			t.Fatalf("Total = %d, want 5", result.Total)
		}
		if result.Data[0].Date != "2024-03-15" {
			t.Errorf("Data[0].Date = %q, want 2024-03-15", result.Data[0].Date)
		}
		if result.Data[4].Date != "2024-03-01" {
			t.Errorf("Data[4].Date = %q, want 2024-03-01", result.Data[4].Date)
		}
	})

	t.Run("type filter", func(t *testing.T) {
		income := treasury.TypeIncome
		result, err := sys.List(ctx, pagination.PageRequest{}, treasury.Filters{Type: &income})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 3 {
			t.Errorf("Total = %d, want 3", result.Total)
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		from, to := "2024-03-05", "2024-03-12"
		result, err := sys.List(ctx, pagination.PageRequest{}, treasury.Filters{DateFrom: &from, DateTo: &to})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 3 {
			t.Errorf("Total = %d, want 3", result.Total)
		}
	})

	t.Run("category search", func(t *testing.T) {
		search := "Fogging"
		result, err := sys.List(ctx, pagination.PageRequest{Search: &search}, treasury.Filters{})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("Total = %d, want 1", result.Total)
		}
	})
}

func TestCreate(t *testing.T) {
	sys := newSystem(t, "treasury_create", nil)
	ctx := context.Background()

	tx, err := sys.Create(ctx, treasury.CreateCommand{
		Date:        "2024-04-01",
		Description: "Iuran April",
		Amount:      2600000,
		Type:        treasury.TypeIncome,
		Category:    "Iuran",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tx.ID == uuid.Nil {
		t.Error("ID not assigned")
	}

	s, err := sys.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if s.TotalIncome != seedIncome+2600000 {
		t.Errorf("TotalIncome = %d, want %d", s.TotalIncome, seedIncome+2600000)
	}
}

func TestCreateValidation(t *testing.T) {
	sys := newSystem(t, "treasury_create_invalid", nil)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  treasury.CreateCommand
		want error
	}{
		{
			"missing description",
			treasury.CreateCommand{Date: "2024-04-01", Amount: 100, Type: treasury.TypeIncome},
			treasury.ErrInvalidTransaction,
		},
		{
			"zero amount",
			treasury.CreateCommand{Date: "2024-04-01", Description: "x", Type: treasury.TypeIncome},
			treasury.ErrInvalidTransaction,
		},
		{
			"negative amount",
			treasury.CreateCommand{Date: "2024-04-01", Description: "x", Amount: -50, Type: treasury.TypeExpense},
			treasury.ErrInvalidTransaction,
		},
		{
			"unknown type",
			treasury.CreateCommand{Date: "2024-04-01", Description: "x", Amount: 100, Type: "TRANSFER"},
			treasury.ErrInvalidType,
		},
		{
			"missing date",
			treasury.CreateCommand{Description: "x", Amount: 100, Type: treasury.TypeIncome},
			treasury.ErrInvalidTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Create(ctx, tt.cmd)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	sys := newSystem(t, "treasury_delete", nil)
	ctx := context.Background()

	seeded := uuid.MustParse("f4a5b6c7-1d2e-4f30-9a8b-c5d6e7f8a901")
	if err := sys.Delete(ctx, seeded); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	s, err := sys.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if s.TotalIncome != seedIncome-2500000 {
		t.Errorf("TotalIncome = %d after delete", s.TotalIncome)
	}

	if err := sys.Delete(ctx, uuid.New()); !errors.Is(err, treasury.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestInsight(t *testing.T) {
	gw := &stubGateway{insight: "1. Kas RT dalam kondisi sehat."}
	sys := newSystem(t, "treasury_insight", gw)
	ctx := context.Background()

	// Push the ledger past the snapshot limit.
	for i := range 3 {
		_, err := sys.Create(ctx, treasury.CreateCommand{
			Date:        fmt.Sprintf("2024-04-%02d", i+1),
			Description: fmt.Sprintf("Transaksi tambahan %d", i+1),
			Amount:      10000,
			Type:        treasury.TypeExpense,
			Category:    "Lainnya",
		})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := sys.Insight(ctx)
	if err != nil {
		t.Fatalf("Insight error: %v", err)
	}
	if got != "1. Kas RT dalam kondisi sehat." {
		t.Errorf("Insight = %q", got)
	}

	snap := gw.lastSnapshot
	if snap == nil {
		t.Fatal("gateway received no snapshot")
	}
	if snap.TotalIncome != seedIncome {
		t.Errorf("snapshot income = %d, want %d", snap.TotalIncome, seedIncome)
	}
	if snap.TotalExpense != seedExpense+30000 {
		t.Errorf("snapshot expense = %d, want %d", snap.TotalExpense, seedExpense+30000)
	}
	if len(snap.Recent) != 5 {
		t.Fatalf("len(Recent) = %d, want 5", len(snap.Recent))
	}
	// newest first: the three April entries then the latest March ones
	if snap.Recent[0].Date != "2024-04-03" {
		t.Errorf("Recent[0].Date = %q, want 2024-04-03", snap.Recent[0].Date)
	}
}
