package citizens_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rukun/internal/citizens"
	"rukun/internal/genai"
	"rukun/pkg/database"
	"rukun/pkg/pagination"
)

var (
	seedAhmadID = uuid.MustParse("e3f0a2d1-5b6c-4d7e-8f90-a1b2c3d4e501")
	seedBudiID  = uuid.MustParse("e3f0a2d1-5b6c-4d7e-8f90-a1b2c3d4e503")
	seedCardID  = uuid.MustParse("b6a1c9e2-0f47-4c53-9a86-1d2e8f3a4b01")
)

// stubGateway returns canned extraction results and records the input text.
type stubGateway struct {
	result   genai.ExtractionResult
	lastText string
}

func (s *stubGateway) ExtractCitizenRecord(_ context.Context, text string) genai.ExtractionResult {
	s.lastText = text
	return s.result
}

func (s *stubGateway) GenerateFinancialInsight(context.Context, genai.FinancialSnapshot) string {
	return ""
}

func (s *stubGateway) GenerateLetterBody(context.Context, string, string, string) (string, bool) {
	return "", false
}

func (s *stubGateway) GenerateDemographicInsight(context.Context, genai.DemographicStats) string {
	return ""
}

func openDB(t *testing.T, name string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newSystem(t *testing.T, name string, gw *stubGateway) citizens.System {
	t.Helper()

	if gw == nil {
		gw = &stubGateway{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return citizens.New(openDB(t, name), gw, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func TestFindSeeded(t *testing.T) {
	sys := newSystem(t, "citizens_find", nil)

	c, err := sys.Find(context.Background(), seedAhmadID)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}

	if c.Name != "Ahmad Subardjo" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.NIK != "3201234567890001" {
		t.Errorf("NIK = %q", c.NIK)
	}
	if !c.IsHeadOfFamily {
		t.Error("IsHeadOfFamily = false, want true")
	}
	if c.FamilyCardID == nil || *c.FamilyCardID != seedCardID {
		t.Errorf("FamilyCardID = %v, want %v", c.FamilyCardID, seedCardID)
	}
}

func TestFindMissing(t *testing.T) {
	sys := newSystem(t, "citizens_find_missing", nil)

	_, err := sys.Find(context.Background(), uuid.New())
	if !errors.Is(err, citizens.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	sys := newSystem(t, "citizens_list", nil)
	ctx := context.Background()

	t.Run("all seeded citizens", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{}, citizens.Filters{})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 4 {
			t.Errorf("Total = %d, want 4", result.Total)
		}
		if len(result.Data) != 4 {
			t.Errorf("len(Data) = %d, want 4", len(result.Data))
		}
		// default sort is by name ascending
		if result.Data[0].Name != "Ahmad Subardjo" {
			t.Errorf("Data[0].Name = %q", result.Data[0].Name)
		}
	})

	t.Run("gender filter", func(t *testing.T) {
		gender := citizens.GenderFemale
		result, err := sys.List(ctx, pagination.PageRequest{}, citizens.Filters{Gender: &gender})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("Total = %d, want 2", result.Total)
		}
		for _, c := range result.Data {
			if c.Gender != citizens.GenderFemale {
				t.Errorf("Gender = %q, want %q", c.Gender, citizens.GenderFemale)
			}
		}
	})

	t.Run("head of family filter", func(t *testing.T) {
		head := true
		result, err := sys.List(ctx, pagination.PageRequest{}, citizens.Filters{IsHeadOfFamily: &head})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("Total = %d, want 2", result.Total)
		}
	})

	t.Run("search by name", func(t *testing.T) {
		search := "Budi"
		result, err := sys.List(ctx, pagination.PageRequest{Search: &search}, citizens.Filters{})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("Total = %d, want 1", result.Total)
		}
		if result.Data[0].ID != seedBudiID {
			t.Errorf("Data[0].ID = %v, want %v", result.Data[0].ID, seedBudiID)
		}
	})

	t.Run("family card filter", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{}, citizens.Filters{FamilyCardID: &seedCardID})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if result.Total != 3 {
			t.Errorf("Total = %d, want 3", result.Total)
		}
	})
}

func TestCreate(t *testing.T) {
	sys := newSystem(t, "citizens_create", nil)
	ctx := context.Background()

	cmd := citizens.CreateCommand{
		NIK:     "3201234567890099",
		Name:    "Dewi Lestari",
		POB:     "Yogyakarta",
		DOB:     "1995-11-02",
		Gender:  citizens.GenderFemale,
		Address: "Jl. Melati No. 9",
	}

	c, err := sys.Create(ctx, cmd)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
	if c.Name != "Dewi Lestari" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.FamilyCardID != nil {
		t.Errorf("FamilyCardID = %v, want nil", c.FamilyCardID)
	}

	found, err := sys.Find(ctx, c.ID)
	if err != nil {
		t.Fatalf("Find after Create error: %v", err)
	}
	if found.NIK != cmd.NIK {
		t.Errorf("NIK = %q, want %q", found.NIK, cmd.NIK)
	}
}

func TestCreateDuplicateNIK(t *testing.T) {
	sys := newSystem(t, "citizens_create_dup", nil)

	_, err := sys.Create(context.Background(), citizens.CreateCommand{
		NIK:  "3201234567890001", // seeded NIK
		Name: "Orang Lain",
	})
	if !errors.Is(err, citizens.ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestCreateValidation(t *testing.T) {
	sys := newSystem(t, "citizens_create_invalid", nil)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  citizens.CreateCommand
	}{
		{"missing nik", citizens.CreateCommand{Name: "Tanpa NIK"}},
		{"missing name", citizens.CreateCommand{NIK: "3201234567890098"}},
		{"unknown gender", citizens.CreateCommand{NIK: "3201234567890097", Name: "X", Gender: "Lainnya"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Create(ctx, tt.cmd)
			if !errors.Is(err, citizens.ErrInvalidCitizen) {
				t.Errorf("err = %v, want ErrInvalidCitizen", err)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	sys := newSystem(t, "citizens_update", nil)
	ctx := context.Background()

	cmd := citizens.UpdateCommand{CreateCommand: citizens.CreateCommand{
		NIK:        "3201234567890003",
		Name:       "Budi Santoso",
		POB:        "Surabaya",
		DOB:        "2005-01-10",
		Gender:     citizens.GenderMale,
		Occupation: "Mahasiswa",
		Address:    "Jl. Melati No. 1",
	}}

	c, err := sys.Update(ctx, seedBudiID, cmd)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if c.Occupation != "Mahasiswa" {
		t.Errorf("Occupation = %q, want Mahasiswa", c.Occupation)
	}
	if c.FamilyCardID != nil {
		t.Error("FamilyCardID survived an update that cleared it")
	}

	t.Run("missing citizen", func(t *testing.T) {
		_, err := sys.Update(ctx, uuid.New(), cmd)
		if !errors.Is(err, citizens.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	sys := newSystem(t, "citizens_delete", nil)
	ctx := context.Background()

	if err := sys.Delete(ctx, seedBudiID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := sys.Find(ctx, seedBudiID); !errors.Is(err, citizens.ErrNotFound) {
		t.Errorf("Find after Delete err = %v, want ErrNotFound", err)
	}

	t.Run("missing citizen", func(t *testing.T) {
		if err := sys.Delete(ctx, uuid.New()); !errors.Is(err, citizens.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestExtractDelegatesToGateway(t *testing.T) {
	gw := &stubGateway{result: genai.ExtractionResult{
		Status: genai.ExtractionComplete,
		Record: &genai.CitizenRecord{NIK: "3201", Name: "Dewi"},
	}}
	sys := newSystem(t, "citizens_extract", gw)

	result := sys.Extract(context.Background(), "data KTP Dewi")

	if gw.lastText != "data KTP Dewi" {
		t.Errorf("gateway received %q", gw.lastText)
	}
	if result.Status != genai.ExtractionComplete {
		t.Errorf("Status = %q", result.Status)
	}
}

func TestExtractHandler(t *testing.T) {
	post := func(t *testing.T, gw *stubGateway, body string) *httptest.ResponseRecorder {
		t.Helper()

		sys := newSystem(t, "citizens_extract_handler_"+strings.ReplaceAll(t.Name(), "/", "_"), gw)
		h := sys.Handler()

		req := httptest.NewRequest(http.MethodPost, "/citizens/extract", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Extract(rec, req)
		return rec
	}

	t.Run("complete result is accepted", func(t *testing.T) {
		gw := &stubGateway{result: genai.ExtractionResult{
			Status: genai.ExtractionComplete,
			Record: &genai.CitizenRecord{NIK: "3201", Name: "Dewi"},
		}}

		rec := post(t, gw, `{"text":"data KTP Dewi"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("partial result is rejected with its payload", func(t *testing.T) {
		gw := &stubGateway{result: genai.ExtractionResult{
			Status: genai.ExtractionPartial,
			Record: &genai.CitizenRecord{Name: "Dewi"},
		}}

		rec := post(t, gw, `{"text":"warga bernama Dewi"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}

		var result genai.ExtractionResult
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if result.Status != genai.ExtractionPartial {
			t.Errorf("Status = %q, want partial", result.Status)
		}
		if result.Record == nil || result.Record.Name != "Dewi" {
			t.Errorf("Record = %+v, want partial fields for prefill", result.Record)
		}
	})

	t.Run("empty result carries its reason", func(t *testing.T) {
		gw := &stubGateway{result: genai.ExtractionResult{
			Status: genai.ExtractionEmpty,
			Reason: genai.ReasonTransport,
		}}

		rec := post(t, gw, `{"text":"data warga"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}

		var result genai.ExtractionResult
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if result.Reason != genai.ReasonTransport {
			t.Errorf("Reason = %q, want transport", result.Reason)
		}
	})
}
