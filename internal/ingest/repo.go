package ingest

import (
	"errors"

	"github.com/CircuitStats/CS-Backend/internal/scores"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Natural-key lookup-or-create for the reference entities. Each helper
// runs on the enclosing document transaction, so a created row disappears
// with the rollback if the document later fails.

func getOrCreateSeason(tx *gorm.DB, year int) (*scores.Season, error) {
	var season scores.Season
	err := tx.Where("year = ?", year).First(&season).Error
	if err == nil {
		return &season, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	season = scores.Season{ID: uuid.New(), Year: year}
	if err := tx.Create(&season).Error; err != nil {
		return nil, err
	}
	return &season, nil
}

func getOrCreateHost(tx *gorm.DB, name, city, state string) (*scores.HostLocation, error) {
	var host scores.HostLocation
	err := tx.Where("name = ? AND city = ? AND state = ?", name, city, state).First(&host).Error
	if err == nil {
		return &host, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	host = scores.HostLocation{ID: uuid.New(), Name: name, City: city, State: state}
	if err := tx.Create(&host).Error; err != nil {
		return nil, err
	}
	return &host, nil
}

func getOrCreateClassification(tx *gorm.DB, name string) (*scores.Classification, error) {
	var cls scores.Classification
	err := tx.Where("name = ?", name).First(&cls).Error
	if err == nil {
		return &cls, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cls = scores.Classification{ID: uuid.New(), Name: name}
	if err := tx.Create(&cls).Error; err != nil {
		return nil, err
	}
	return &cls, nil
}

// getOrCreateGroup upserts a group by (name, home_city). Classification is
// a point-in-time attribute: an existing group is moved to the current
// ingestion context's classification when it differs.
func getOrCreateGroup(tx *gorm.DB, name, homeCity string, classificationID uuid.UUID) (*scores.Group, error) {
	var group scores.Group
	err := tx.Where("name = ? AND home_city = ?", name, homeCity).First(&group).Error
	if err == nil {
		if group.ClassificationID != classificationID {
			if err := tx.Model(&group).Update("classification_id", classificationID).Error; err != nil {
				return nil, err
			}
			group.ClassificationID = classificationID
		}
		return &group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	group = scores.Group{ID: uuid.New(), Name: name, HomeCity: homeCity, ClassificationID: classificationID}
	if err := tx.Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}
