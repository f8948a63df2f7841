// Package extract defines the boundary to the PDF extraction
// collaborators. Table geometry detection lives outside this process; the
// pipeline only sees raw text grids and page text.
package extract

// Table is a raw grid of text cells, row-major, as the geometry detector
// found it. Nothing about it is normalized.
type Table [][]string

// TableSource yields the raw tables detected on one zero-based page of a
// document. Returning zero tables is legitimate (blank or prose-only
// page). Calls are synchronous and may be slow.
type TableSource interface {
	Tables(path string, page int) ([]Table, error)
}

// PageTextSource yields a page's extracted plain text, or "" when the
// page has none.
type PageTextSource interface {
	PageText(path string, page int) (string, error)
	PageCount(path string) (int, error)
}

// FallbackTableSource tries a primary detection strategy and, only when
// it finds no tables at all, retries with a looser secondary strategy.
// Errors from either strategy propagate as-is.
type FallbackTableSource struct {
	Primary   TableSource
	Secondary TableSource
}

func (s FallbackTableSource) Tables(path string, page int) ([]Table, error) {
	tables, err := s.Primary.Tables(path, page)
	if err != nil {
		return nil, err
	}
	if len(tables) > 0 {
		return tables, nil
	}
	return s.Secondary.Tables(path, page)
}
