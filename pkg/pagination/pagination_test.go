package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"rukun/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values", pagination.PageRequest{}, 1, 20},
		{"negative page", pagination.PageRequest{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size", pagination.PageRequest{Page: 2, PageSize: 500}, 2, 100},
		{"valid request", pagination.PageRequest{Page: 3, PageSize: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(cfg)
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "10")
	values.Set("search", "melati")
	values.Set("sort", "Name,-Date")

	req := pagination.PageRequestFromQuery(values, cfg)

	if req.Page != 2 || req.PageSize != 10 {
		t.Errorf("page/size = %d/%d", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "melati" {
		t.Errorf("Search = %v", req.Search)
	}
	if len(req.Sort) != 2 {
		t.Fatalf("len(Sort) = %d, want 2", len(req.Sort))
	}
	if req.Sort[1].Field != "Date" || !req.Sort[1].Descending {
		t.Errorf("Sort[1] = %+v", req.Sort[1])
	}

	if req.Offset() != 10 {
		t.Errorf("Offset() = %d, want 10", req.Offset())
	}
}

func TestSortFieldsUnmarshal(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var req pagination.PageRequest
		if err := json.Unmarshal([]byte(`{"sort":"Name,-Date"}`), &req); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if len(req.Sort) != 2 || req.Sort[0].Field != "Name" {
			t.Errorf("Sort = %+v", req.Sort)
		}
	})

	t.Run("array form", func(t *testing.T) {
		var req pagination.PageRequest
		body := `{"sort":[{"Field":"Date","Descending":true}]}`
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if len(req.Sort) != 1 || !req.Sort[0].Descending {
			t.Errorf("Sort = %+v", req.Sort)
		}
	})
}

func TestNewPageResult(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		result := pagination.NewPageResult([]int{1, 2, 3}, 25, 1, 10)
		if result.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", result.TotalPages)
		}
	})

	t.Run("empty data stays non-nil", func(t *testing.T) {
		result := pagination.NewPageResult[int](nil, 0, 1, 10)
		if result.Data == nil {
			t.Error("Data is nil, want empty slice")
		}
		if result.TotalPages != 1 {
			t.Errorf("TotalPages = %d, want 1", result.TotalPages)
		}
	})
}
