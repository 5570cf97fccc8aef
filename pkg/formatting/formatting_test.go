package formatting_test

import (
	"errors"
	"testing"
	"time"

	"rukun/pkg/formatting"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestParse(t *testing.T) {
	t.Run("direct JSON", func(t *testing.T) {
		got, err := formatting.Parse[sample](`{"name":"test","value":42}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "test" || got.Value != 42 {
			t.Errorf("Parse = %+v, want {Name:test Value:42}", got)
		}
	})

	t.Run("direct JSON with whitespace", func(t *testing.T) {
		got, err := formatting.Parse[sample](`  {"name":"padded","value":1}  `)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "padded" {
			t.Errorf("Name = %q, want padded", got.Name)
		}
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		input := "```json\n{\"name\":\"fenced\",\"value\":7}\n```"
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "fenced" || got.Value != 7 {
			t.Errorf("Parse = %+v, want {Name:fenced Value:7}", got)
		}
	})

	t.Run("markdown fenced with surrounding text", func(t *testing.T) {
		input := "Here is the result:\n```json\n{\"name\":\"wrapped\",\"value\":5}\n```\nDone."
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "wrapped" {
			t.Errorf("Name = %q, want wrapped", got.Name)
		}
	})

	t.Run("unparseable content", func(t *testing.T) {
		_, err := formatting.Parse[sample]("maaf, tidak ada data")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("err = %v, want ErrParseFailed", err)
		}
	})
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "Rp0"},
		{"under a thousand", 450, "Rp450"},
		{"exact thousand", 1000, "Rp1.000"},
		{"typical dues", 2500000, "Rp2.500.000"},
		{"uneven grouping", 12345678, "Rp12.345.678"},
		{"negative", -450000, "-Rp450.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatRupiah(tt.amount); got != tt.want {
				t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatDateID(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"mid year", time.Date(1975, time.June, 15, 0, 0, 0, 0, time.UTC), "15 Juni 1975"},
		{"january", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "1 Januari 2024"},
		{"december", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "31 Desember 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatDateID(tt.date); got != tt.want {
				t.Errorf("FormatDateID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseISODate(t *testing.T) {
	d, err := formatting.ParseISODate("1992-03-25")
	if err != nil {
		t.Fatalf("ParseISODate error: %v", err)
	}
	if d.Year() != 1992 || d.Month() != time.March || d.Day() != 25 {
		t.Errorf("ParseISODate = %v", d)
	}

	if _, err := formatting.ParseISODate("25-03-1992"); err == nil {
		t.Error("ParseISODate accepted a non-ISO date")
	}
}
