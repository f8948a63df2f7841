package seeds

import (
	"fmt"
	"os"

	"github.com/CircuitStats/CS-Backend/internal/db"
	"github.com/CircuitStats/CS-Backend/internal/scores"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

func SeedAll(weightsPath string) error {
	if err := SeedCaptionWeights(weightsPath); err != nil {
		return err
	}
	return nil
}

// SeedCaptionWeights loads a YAML file mapping season year -> caption ->
// weight percent and upserts the rows. Seasons referenced by the file are
// created if missing, so weights can be loaded before the first sheet of
// a season is ingested (ingestion snapshots whatever exists at that time).
func SeedCaptionWeights(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read caption weights: %w", err)
	}

	var byYear map[int]map[string]float64
	if err := yaml.Unmarshal(data, &byYear); err != nil {
		return fmt.Errorf("parse caption weights: %w", err)
	}

	for year, weights := range byYear {
		season := scores.Season{ID: uuid.New(), Year: year}
		if err := db.DB.Where("year = ?", year).FirstOrCreate(&season).Error; err != nil {
			return fmt.Errorf("season %d: %w", year, err)
		}

		for caption, weight := range weights {
			if weight < 0 || weight > 100 {
				return fmt.Errorf("season %d caption %q: weight %v out of range", year, caption, weight)
			}
			cw := scores.CaptionWeight{
				ID:       uuid.New(),
				SeasonID: season.ID,
				Caption:  caption,
				Weight:   weight,
			}
			err := db.DB.Where("season_id = ? AND caption = ?", season.ID, caption).
				Assign(map[string]interface{}{"weight": weight}).
				FirstOrCreate(&cw).Error
			if err != nil {
				return fmt.Errorf("season %d caption %q: %w", year, caption, err)
			}
		}
	}
	return nil
}
