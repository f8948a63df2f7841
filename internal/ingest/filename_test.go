package ingest

import (
	"errors"
	"testing"
	"time"
)

// TestParseFilename_Canonical covers the documented example filename.
func TestParseFilename_Canonical(t *testing.T) {
	id, err := ParseFilename("2024_09_14_arcadia_hs_saturday_arcadia_ca.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC); !id.ShowDate.Equal(want) {
		t.Errorf("date: expected %v, got %v", want, id.ShowDate)
	}
	if id.HostID != "arcadia_hs" {
		t.Errorf("host id: expected arcadia_hs, got %q", id.HostID)
	}
	if id.Weekday != "Saturday" {
		t.Errorf("weekday: expected Saturday, got %q", id.Weekday)
	}
	if id.City != "Arcadia" {
		t.Errorf("city: expected Arcadia, got %q", id.City)
	}
	if id.State != "CA" {
		t.Errorf("state: expected CA, got %q", id.State)
	}
	if id.ShowName != "Arcadia Hs Saturday" {
		t.Errorf("show name: expected \"Arcadia Hs Saturday\", got %q", id.ShowName)
	}
}

func TestParseFilename_MultiTokenHostAndCity(t *testing.T) {
	id, err := ParseFilename("2025_03_08_temescal_canyon_hs_saturday_lake_elsinore_ca.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.HostID != "temescal_canyon_hs" {
		t.Errorf("host id: got %q", id.HostID)
	}
	if id.City != "Lake Elsinore" {
		t.Errorf("city: got %q", id.City)
	}
	if id.ShowName != "Temescal Canyon Hs Saturday" {
		t.Errorf("show name: got %q", id.ShowName)
	}
}

// TestParseFilename_AppendsHS verifies the host id always ends in an hs
// token even when the filename omits it.
func TestParseFilename_AppendsHS(t *testing.T) {
	id, err := ParseFilename("2024_11_02_monrovia_finals_monrovia_ca.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.HostID != "monrovia_hs" {
		t.Errorf("host id: expected monrovia_hs, got %q", id.HostID)
	}
	if id.Weekday != "Finals" {
		t.Errorf("weekday: expected Finals, got %q", id.Weekday)
	}
}

func TestParseFilename_WeekdayCaseInsensitive(t *testing.T) {
	id, err := ParseFilename("2024_09_14_arcadia_hs_SATURDAY_arcadia_ca.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Weekday != "Saturday" {
		t.Errorf("weekday: expected Saturday, got %q", id.Weekday)
	}
}

func TestParseFilename_Errors(t *testing.T) {
	cases := []struct {
		name string
		fn   string
	}{
		{"too few tokens", "2024_09_14_arcadia.pdf"},
		{"no weekday token", "2024_09_14_arcadia_hs_tuesday_arcadia_ca.pdf"},
		{"no date prefix", "arcadia_hs_saturday_arcadia_city_ca.pdf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFilename(tc.fn)
			if err == nil {
				t.Fatalf("expected error for %q", tc.fn)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("expected FormatError, got %T", err)
			}
		})
	}
}
