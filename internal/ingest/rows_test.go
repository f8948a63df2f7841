package ingest

import (
	"reflect"
	"testing"

	"github.com/CircuitStats/CS-Backend/internal/extract"
)

func filterTable(t *testing.T, rows ...[]string) *DataTable {
	t.Helper()
	raw := extract.Table{
		{"", "", "SubTotal"},
		{"Group", "Home City", ""},
	}
	raw = append(raw, rows...)
	tbl, err := NormalizeTable(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := SplitCaptionCells(tbl); err != nil {
		t.Fatalf("split: %v", err)
	}
	return tbl
}

func TestFilterPerformanceRows(t *testing.T) {
	tbl := filterTable(t,
		[]string{"Arcadia HS", "Arcadia", "70.1\n68.2\n138.3\n1"},
		[]string{"GROUP", "Home City", "0\n0\n0\n0"},  // stray repeated header
		[]string{"Ayala HS", "", "65.0\n64.0\n129.0\n2"}, // missing home city
		[]string{"", "Chino", "65.0\n64.0\n129.0\n3"},    // missing group
		[]string{"Dayton HS", "Dayton", "0\n0\n0\n0"},    // non-positive total
		[]string{"Ramona HS", "Riverside", "60.0\n61.0\n121.0\n2"},
	)

	kept, dropped := FilterPerformanceRows(tbl)
	if want := []int{0, 5}; !reflect.DeepEqual(kept, want) {
		t.Errorf("kept: expected %v, got %v", want, kept)
	}
	if dropped != 4 {
		t.Errorf("dropped: expected 4, got %d", dropped)
	}
}

// TestFilterPerformanceRows_HeaderRowAnyCase verifies the "group" guard is
// case-insensitive and whitespace-tolerant.
func TestFilterPerformanceRows_HeaderRowAnyCase(t *testing.T) {
	tbl := filterTable(t,
		[]string{"  Group  ", "Home City", "1.0\n1.0\n2.0\n1"},
		[]string{"gRoUp", "Home City", "1.0\n1.0\n2.0\n1"},
	)
	kept, dropped := FilterPerformanceRows(tbl)
	if len(kept) != 0 || dropped != 2 {
		t.Errorf("expected all rows dropped, kept %v", kept)
	}
}

func TestFilterPerformanceRows_NegativeTotal(t *testing.T) {
	tbl := filterTable(t,
		[]string{"Arcadia HS", "Arcadia", "1.0\n1.0\n-2.0\n1"},
	)
	kept, dropped := FilterPerformanceRows(tbl)
	if len(kept) != 0 || dropped != 1 {
		t.Errorf("expected negative total dropped, kept %v", kept)
	}
}
