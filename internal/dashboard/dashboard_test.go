package dashboard_test

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rukun/internal/dashboard"
	"rukun/internal/genai"
	"rukun/internal/treasury"
	"rukun/pkg/database"
	"rukun/pkg/pagination"
)

// stubGateway records the stats handed to insight generation.
type stubGateway struct {
	insight   string
	lastStats *genai.DemographicStats
}

func (s *stubGateway) ExtractCitizenRecord(context.Context, string) genai.ExtractionResult {
	return genai.ExtractionResult{Status: genai.ExtractionEmpty}
}

func (s *stubGateway) GenerateFinancialInsight(context.Context, genai.FinancialSnapshot) string {
	return ""
}

func (s *stubGateway) GenerateLetterBody(context.Context, string, string, string) (string, bool) {
	return "", false
}

func (s *stubGateway) GenerateDemographicInsight(_ context.Context, stats genai.DemographicStats) string {
	s.lastStats = &stats
	return s.insight
}

func newSystem(t *testing.T, name string, gw *stubGateway) (dashboard.System, *sql.DB) {
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
	treasurySys := treasury.New(db, gw, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	return dashboard.New(db, gw, treasurySys, logger), db
}

func insertCitizen(t *testing.T, db *sql.DB, name, gender, dob string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO citizens (id, nik, name, pob, dob, gender, religion, marital_status, occupation, address, is_head_of_family)
		VALUES (?, ?, ?, '', ?, ?, '', '', '', '', 0)`,
		uuid.New(), uuid.NewString(), name, dob, gender,
	)
	if err != nil {
		t.Fatalf("insert citizen: %v", err)
	}
}

// bandFor mirrors the reporting convention: ages from birth year only.
func bandFor(birthYear int) string {
	age := time.Now().Year() - birthYear
	switch {
	case age < 13:
		return "Anak-anak"
	case age < 20:
		return "Remaja"
	case age < 60:
		return "Dewasa"
	default:
		return "Lansia"
	}
}

func TestStats(t *testing.T) {
	sys, db := newSystem(t, "dashboard_stats", nil)
	ctx := context.Background()

	nowYear := time.Now().Year()
	childDOB := fmt.Sprintf("%d-06-01", nowYear-8)
	teenDOB := fmt.Sprintf("%d-06-01", nowYear-15)
	elderDOB := fmt.Sprintf("%d-06-01", nowYear-72)

	insertCitizen(t, db, "Anak Contoh", "Laki-laki", childDOB)
	insertCitizen(t, db, "Remaja Contoh", "Perempuan", teenDOB)
	insertCitizen(t, db, "Lansia Contoh", "Laki-laki", elderDOB)

	stats, err := sys.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	if stats.TotalCitizens != 7 {
		t.Errorf("TotalCitizens = %d, want 7", stats.TotalCitizens)
	}
	if stats.MaleCount != 4 {
		t.Errorf("MaleCount = %d, want 4", stats.MaleCount)
	}
	if stats.FemaleCount != 3 {
		t.Errorf("FemaleCount = %d, want 3", stats.FemaleCount)
	}
	if stats.FamilyCount != 2 {
		t.Errorf("FamilyCount = %d, want 2", stats.FamilyCount)
	}
	if stats.PendingLetters != 2 {
		t.Errorf("PendingLetters = %d, want 2", stats.PendingLetters)
	}

	if stats.Finance.TotalIncome != 4700000 || stats.Finance.TotalExpense != 1200000 {
		t.Errorf("Finance = %+v", stats.Finance)
	}
	if stats.Finance.Balance != 3500000 {
		t.Errorf("Balance = %d, want 3500000", stats.Finance.Balance)
	}

	// Expected band counts: seeded birth years plus the three inserted above.
	want := map[string]int{"Anak-anak": 0, "Remaja": 0, "Dewasa": 0, "Lansia": 0}
	for _, y := range []int{1975, 1980, 2005, 1992, nowYear - 8, nowYear - 15, nowYear - 72} {
		want[bandFor(y)]++
	}

	if len(stats.AgeBands) != 4 {
		t.Fatalf("len(AgeBands) = %d, want 4", len(stats.AgeBands))
	}
	order := []string{"Anak-anak", "Remaja", "Dewasa", "Lansia"}
	for i, band := range stats.AgeBands {
		if band.Name != order[i] {
			t.Errorf("AgeBands[%d].Name = %q, want %q", i, band.Name, order[i])
		}
		if band.Value != want[band.Name] {
			t.Errorf("AgeBands[%q] = %d, want %d", band.Name, band.Value, want[band.Name])
		}
	}
}

func TestInsight(t *testing.T) {
	gw := &stubGateway{insight: "1. Mayoritas warga berusia produktif."}
	sys, _ := newSystem(t, "dashboard_insight", gw)

	got, err := sys.Insight(context.Background())
	if err != nil {
		t.Fatalf("Insight error: %v", err)
	}
	if got != "1. Mayoritas warga berusia produktif." {
		t.Errorf("Insight = %q", got)
	}

	stats := gw.lastStats
	if stats == nil {
		t.Fatal("gateway received no stats")
	}
	if stats.TotalCitizens != 4 {
		t.Errorf("TotalCitizens = %d, want 4", stats.TotalCitizens)
	}
	if stats.FamilyCount != 2 {
		t.Errorf("FamilyCount = %d, want 2", stats.FamilyCount)
	}
	if stats.Finance.Balance != 3500000 {
		t.Errorf("Finance.Balance = %d", stats.Finance.Balance)
	}
}
