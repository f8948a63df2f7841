package ingest

import "strings"

// FilterPerformanceRows returns the indices of rows that describe real
// performances. A row survives only if Group and HomeCity are both
// non-empty, Group is not a stray repeated "Group" header cell, and the
// subtotal-derived total is a positive number. Everything else is sheet
// noise and is dropped silently; callers may log the dropped count.
func FilterPerformanceRows(t *DataTable) (kept []int, dropped int) {
	for i := range t.Rows {
		group := strings.TrimSpace(t.Cell(i, ColGroup))
		homeCity := strings.TrimSpace(t.Cell(i, ColHomeCity))
		if group == "" || homeCity == "" {
			dropped++
			continue
		}
		if strings.EqualFold(group, "group") {
			dropped++
			continue
		}
		total, ok := t.Float(i, "subtotal_total")
		if !ok || total <= 0 {
			dropped++
			continue
		}
		kept = append(kept, i)
	}
	return kept, dropped
}
