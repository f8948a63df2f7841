package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/CircuitStats/CS-Backend/internal/extract"
	"github.com/CircuitStats/CS-Backend/internal/scores"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sources are the extraction collaborators a document is read through.
type Sources struct {
	Tables extract.TableSource
	Text   extract.PageTextSource
}

// UnknownClassification is the placeholder division for pages whose
// header gives no usable classification text. A placeholder, not an error.
const UnknownClassification = "Unknown"

// Ingest runs the whole pipeline for one document inside one transaction:
// identity resolution, reference-entity upserts, show upsert by pdf name,
// wholesale replacement of the show's performances, and per-page table
// ingestion. Any error rolls the document back; other documents are
// unaffected. Strictly sequential; not safe for concurrent callers.
func Ingest(db *gorm.DB, src Sources, path string) error {
	fn := filepath.Base(path)
	log := logrus.WithField("file", fn)

	pageCount, err := src.Text.PageCount(path)
	if err != nil {
		return fmt.Errorf("page count: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Resolve identity: header first, filename fallback for gaps.
		text0, err := src.Text.PageText(path, 0)
		if err != nil {
			return fmt.Errorf("page 0 text: %w", err)
		}
		showName, showDate, city, state, err := resolveIdentity(fn, ScanHeader(text0))
		if err != nil {
			return err
		}

		// 2-3. Season and host by natural key.
		season, err := getOrCreateSeason(tx, showDate.Year())
		if err != nil {
			return fmt.Errorf("upsert season: %w", err)
		}

		hostName := showName
		if i := strings.LastIndex(showName, " "); i > 0 {
			hostName = showName[:i] // "Arcadia HS Saturday" -> "Arcadia HS"
		}
		host, err := getOrCreateHost(tx, hostName, city, state)
		if err != nil {
			return fmt.Errorf("upsert host: %w", err)
		}

		// 4. Week ordinal: shows of this season dated strictly earlier.
		// Computed only for this show; backfilling an earlier-dated sheet
		// later does not renumber existing shows (cmd/renumber-weeks does).
		var earlier int64
		if err := tx.Model(&scores.Show{}).
			Where("season_id = ? AND date < ?", season.ID, showDate).
			Count(&earlier).Error; err != nil {
			return fmt.Errorf("count earlier shows: %w", err)
		}
		week := int(earlier) + 1

		// 5. Upsert the show by its source file.
		var show scores.Show
		err = tx.Where("pdf_name = ?", fn).First(&show).Error
		switch {
		case err == nil:
			if err := tx.Model(&show).Updates(map[string]interface{}{
				"name":      showName,
				"date":      showDate,
				"season_id": season.ID,
				"host_id":   host.ID,
				"week":      week,
			}).Error; err != nil {
				return fmt.Errorf("update show: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			show = scores.Show{
				ID:       uuid.New(),
				Name:     showName,
				Date:     showDate,
				Week:     week,
				PDFName:  fn,
				SeasonID: season.ID,
				HostID:   host.ID,
			}
			if err := tx.Create(&show).Error; err != nil {
				return fmt.Errorf("create show: %w", err)
			}
		default:
			return fmt.Errorf("find show: %w", err)
		}

		// 6. Overwrite semantics: clear any previous performances so a
		// corrected sheet can be re-ingested without manual cleanup.
		if err := clearPerformances(tx, show.ID); err != nil {
			return err
		}

		// 7. Snapshot the season's caption weights.
		var weights []scores.CaptionWeight
		if err := tx.Where("season_id = ?", season.ID).Find(&weights).Error; err != nil {
			return fmt.Errorf("load caption weights: %w", err)
		}
		weightFor := make(map[string]float64, len(weights))
		for _, cw := range weights {
			weightFor[cw.Caption] = cw.Weight
		}

		// 8. Page loop.
		var notes pq.StringArray
		performances := 0
		for page := 0; page < pageCount; page++ {
			pageText, err := src.Text.PageText(path, page)
			if err != nil {
				return fmt.Errorf("page %d text: %w", page, err)
			}
			label, block := SplitClassBlock(ScanHeader(pageText).ClassificationText)
			if label == "" {
				label = UnknownClassification
			}

			tables, err := src.Tables.Tables(path, page)
			if err != nil {
				return fmt.Errorf("page %d tables: %w", page, err)
			}

			for _, raw := range tables {
				n, dropped, err := ingestTable(tx, log, show.ID, raw, label, block, weightFor, page)
				if err != nil {
					return err
				}
				performances += n
				if dropped > 0 {
					notes = append(notes, fmt.Sprintf("page %d: dropped %d non-performance rows", page, dropped))
				}
			}
		}

		if err := tx.Model(&show).Update("ingest_notes", notes).Error; err != nil {
			return fmt.Errorf("update ingest notes: %w", err)
		}

		log.WithFields(logrus.Fields{
			"show":         showName,
			"date":         showDate.Format("2006-01-02"),
			"week":         week,
			"performances": performances,
		}).Info("ingested")
		return nil
	})
}

// resolveIdentity combines the page-0 header with the filename fallback.
// Header values win; the filename only fills what the header missed. The
// host city/state come from the header's "City, ST" location when present,
// otherwise from the filename.
func resolveIdentity(fn string, hdr Header) (name string, date time.Time, city, state string, err error) {
	name = hdr.ShowName
	date = hdr.ShowDate

	if loc := hdr.Location; loc != "" {
		if c, s, ok := strings.Cut(loc, ","); ok {
			city = strings.TrimSpace(c)
			state = strings.TrimSpace(s)
		}
	}

	if name != "" && !date.IsZero() && city != "" {
		return name, date, city, state, nil
	}

	fb, fbErr := ParseFilename(fn)
	if name == "" || date.IsZero() {
		// The header failed on a required field, so the filename must parse.
		if fbErr != nil {
			return "", time.Time{}, "", "", fbErr
		}
		if name == "" {
			name = fb.ShowName
		}
		if date.IsZero() {
			date = fb.ShowDate
		}
	}
	if city == "" && fbErr == nil {
		city = fb.City
		state = fb.State
	}
	return name, date, city, state, nil
}

func clearPerformances(tx *gorm.DB, showID uuid.UUID) error {
	var perfIDs []uuid.UUID
	if err := tx.Model(&scores.Performance{}).
		Where("show_id = ?", showID).
		Pluck("id", &perfIDs).Error; err != nil {
		return fmt.Errorf("list old performances: %w", err)
	}
	if len(perfIDs) == 0 {
		return nil
	}
	if err := tx.Where("performance_id IN ?", perfIDs).Delete(&scores.CaptionScore{}).Error; err != nil {
		return fmt.Errorf("delete old caption scores: %w", err)
	}
	if err := tx.Where("show_id = ?", showID).Delete(&scores.Performance{}).Error; err != nil {
		return fmt.Errorf("delete old performances: %w", err)
	}
	return nil
}

// ingestTable normalizes one raw table and persists its surviving rows.
func ingestTable(tx *gorm.DB, log *logrus.Entry, showID uuid.UUID, raw extract.Table,
	label string, block int, weightFor map[string]float64, page int) (int, int, error) {

	t, err := NormalizeTable(raw)
	if err != nil {
		return 0, 0, fmt.Errorf("page %d: %w", page, err)
	}
	if err := SplitCaptionCells(t); err != nil {
		return 0, 0, fmt.Errorf("page %d: %w", page, err)
	}

	kept, dropped := FilterPerformanceRows(t)
	if dropped > 0 {
		log.WithFields(logrus.Fields{"page": page, "dropped": dropped}).
			Debug("dropped non-performance rows")
	}
	if len(kept) == 0 {
		return 0, dropped, nil
	}

	cls, err := getOrCreateClassification(tx, label)
	if err != nil {
		return 0, 0, fmt.Errorf("upsert classification: %w", err)
	}

	var blockPtr *int
	if block > 0 {
		b := block
		blockPtr = &b
	}

	for _, i := range kept {
		group, err := getOrCreateGroup(tx,
			strings.TrimSpace(t.Cell(i, ColGroup)),
			strings.TrimSpace(t.Cell(i, ColHomeCity)),
			cls.ID)
		if err != nil {
			return 0, 0, fmt.Errorf("upsert group: %w", err)
		}

		total, _ := t.Float(i, "subtotal_total")
		place, _ := t.Int(i, "subtotal_place")
		penalty, _ := t.Float(i, "Timing Penalty") // absent on most sheets

		perf := scores.Performance{
			ID:          uuid.New(),
			ShowID:      showID,
			GroupID:     group.ID,
			BlockNumber: blockPtr,
			TotalScore:  total,
			Placement:   place,
			Penalty:     penalty,
		}
		if err := tx.Create(&perf).Error; err != nil {
			return 0, 0, fmt.Errorf("create performance: %w", err)
		}

		for _, caption := range Captions {
			slug := CaptionSlug(caption)
			comp, _ := t.Float(i, slug+"_comp")
			perfScore, _ := t.Float(i, slug+"_perf")
			capPlace, _ := t.Int(i, slug+"_place")

			cs := scores.CaptionScore{
				ID:            uuid.New(),
				PerformanceID: perf.ID,
				Caption:       caption,
				Weight:        weightFor[caption], // unlisted captions weigh 0
				CompScore:     comp,
				PerfScore:     perfScore,
				Placement:     capPlace,
				// JudgeID stays nil: sheet data is judge-aggregated.
			}
			if err := tx.Create(&cs).Error; err != nil {
				return 0, 0, fmt.Errorf("create caption score: %w", err)
			}
		}
	}
	return len(kept), dropped, nil
}
