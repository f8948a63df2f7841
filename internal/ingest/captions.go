package ingest

import (
	"errors"
	"strconv"
	"strings"
)

// Captions are the four scored captions on a sheet; SubTotal carries the
// show total in the same composite cell layout.
var Captions = []string{"Effect - Music", "Effect - Visual", "Music", "Visual"}

// captionColumns are the composite columns the splitter recognizes, in
// sheet order.
var captionColumns = []string{"Effect - Music", "Effect - Visual", "Music", "Visual", "SubTotal"}

// CaptionSlug derives the column-name stem for a caption: lower-cased,
// spaces to underscores, hyphens dropped. "Effect - Music" becomes
// "effect__music", "SubTotal" becomes "subtotal".
func CaptionSlug(caption string) string {
	s := strings.ToLower(caption)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "")
}

// splitCell decodes one composite cell: exactly four newline-delimited
// values in fixed order (competition score, performance score, total,
// placement). Extra lines are ignored.
func splitCell(cell string) (comp, perf, total float64, place int, err error) {
	lines := strings.Split(cell, "\n")
	if len(lines) < 4 {
		return 0, 0, 0, 0, errors.New("fewer than 4 values")
	}
	if comp, err = strconv.ParseFloat(strings.TrimSpace(lines[0]), 64); err != nil {
		return 0, 0, 0, 0, err
	}
	if perf, err = strconv.ParseFloat(strings.TrimSpace(lines[1]), 64); err != nil {
		return 0, 0, 0, 0, err
	}
	if total, err = strconv.ParseFloat(strings.TrimSpace(lines[2]), 64); err != nil {
		return 0, 0, 0, 0, err
	}
	if place, err = strconv.Atoi(strings.TrimSpace(lines[3])); err != nil {
		return 0, 0, 0, 0, err
	}
	return comp, perf, total, place, nil
}

// JoinCell is the inverse of splitCell, useful for fixtures and for
// re-emitting sheets. Scores render with the sheets' one-decimal
// convention, so a split cell re-joins to its original text.
func JoinCell(comp, perf, total float64, place int) string {
	return strings.Join([]string{
		strconv.FormatFloat(comp, 'f', 1, 64),
		strconv.FormatFloat(perf, 'f', 1, 64),
		strconv.FormatFloat(total, 'f', 1, 64),
		strconv.Itoa(place),
	}, "\n")
}

// SplitCaptionCells replaces each recognized composite column with four
// typed columns named <slug>_comp, <slug>_perf, <slug>_total and
// <slug>_place, appended in caption order. A cell that does not decode is
// a ParseError, and the caller aborts the whole document: one malformed
// cell means the table geometry for the page cannot be trusted.
func SplitCaptionCells(t *DataTable) error {
	for _, caption := range captionColumns {
		idx, ok := t.colIndex[caption]
		if !ok {
			continue
		}
		slug := CaptionSlug(caption)

		comps := make([]string, len(t.Rows))
		perfs := make([]string, len(t.Rows))
		totals := make([]string, len(t.Rows))
		places := make([]string, len(t.Rows))
		for i, row := range t.Rows {
			comp, perf, total, place, err := splitCell(row[idx])
			if err != nil {
				return &ParseError{Column: caption, Cell: row[idx], Err: err}
			}
			comps[i] = strconv.FormatFloat(comp, 'f', -1, 64)
			perfs[i] = strconv.FormatFloat(perf, 'f', -1, 64)
			totals[i] = strconv.FormatFloat(total, 'f', -1, 64)
			places[i] = strconv.Itoa(place)
		}

		t.dropColumn(idx)
		t.appendColumn(slug+"_comp", comps)
		t.appendColumn(slug+"_perf", perfs)
		t.appendColumn(slug+"_total", totals)
		t.appendColumn(slug+"_place", places)
	}
	return nil
}

func (t *DataTable) dropColumn(idx int) {
	t.Columns = append(t.Columns[:idx], t.Columns[idx+1:]...)
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:idx], row[idx+1:]...)
	}
	t.reindex()
}

func (t *DataTable) appendColumn(name string, values []string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	t.reindex()
}
