package extract_test

import (
	"errors"
	"testing"

	"github.com/CircuitStats/CS-Backend/internal/extract"
)

// stubSource records calls and returns canned results.
type stubSource struct {
	tables []extract.Table
	err    error
	calls  int
}

func (s *stubSource) Tables(path string, page int) ([]extract.Table, error) {
	s.calls++
	return s.tables, s.err
}

func TestFallbackTableSource_PrimaryHit(t *testing.T) {
	primary := &stubSource{tables: []extract.Table{{{"a"}}}}
	secondary := &stubSource{tables: []extract.Table{{{"b"}}}}
	src := extract.FallbackTableSource{Primary: primary, Secondary: secondary}

	tables, err := src.Tables("x.pdf", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 || tables[0][0][0] != "a" {
		t.Errorf("expected primary result, got %v", tables)
	}
	if secondary.calls != 0 {
		t.Error("secondary should not run when primary finds tables")
	}
}

// TestFallbackTableSource_ZeroTables verifies the looser strategy runs
// only when the primary legitimately finds nothing.
func TestFallbackTableSource_ZeroTables(t *testing.T) {
	primary := &stubSource{}
	secondary := &stubSource{tables: []extract.Table{{{"b"}}}}
	src := extract.FallbackTableSource{Primary: primary, Secondary: secondary}

	tables, err := src.Tables("x.pdf", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 || tables[0][0][0] != "b" {
		t.Errorf("expected secondary result, got %v", tables)
	}
}

func TestFallbackTableSource_PrimaryError(t *testing.T) {
	boom := errors.New("boom")
	primary := &stubSource{err: boom}
	secondary := &stubSource{}
	src := extract.FallbackTableSource{Primary: primary, Secondary: secondary}

	if _, err := src.Tables("x.pdf", 0); !errors.Is(err, boom) {
		t.Errorf("expected primary error to propagate, got %v", err)
	}
	if secondary.calls != 0 {
		t.Error("secondary should not run after a primary error")
	}
}

// TestFallbackTableSource_BothEmpty: zero tables from both strategies is a
// legitimate blank page, not an error.
func TestFallbackTableSource_BothEmpty(t *testing.T) {
	src := extract.FallbackTableSource{Primary: &stubSource{}, Secondary: &stubSource{}}
	tables, err := src.Tables("x.pdf", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("expected no tables, got %v", tables)
	}
}
