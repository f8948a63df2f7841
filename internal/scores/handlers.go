package scores

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CircuitStats/CS-Backend/internal/db"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func SeasonHandler(w http.ResponseWriter, r *http.Request) {
	var seasons []Season
	if err := db.DB.Order("year").Find(&seasons).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, seasons)
}

func SeasonShowsHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}

	var season Season
	if err := db.DB.Where("year = ?", year).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var shows []Show
	if err := db.DB.Preload("Host").
		Where("season_id = ?", season.ID).
		Order("date, name").
		Find(&shows).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, shows)
}

// PerformanceResult is one performance row of a show's results, with the
// derived weighted score computed on demand.
type PerformanceResult struct {
	Performance
	WeightedScore float64 `json:"weighted_score"`
}

func ShowResultsHandler(w http.ResponseWriter, r *http.Request) {
	showID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid show id", http.StatusBadRequest)
		return
	}

	var show Show
	err = db.DB.Preload("Host").Preload("Season").
		Preload("Performances.Group.Classification").
		Preload("Performances.CaptionScores").
		First(&show, "id = ?", showID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Show not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	results := make([]PerformanceResult, 0, len(show.Performances))
	for _, p := range show.Performances {
		results = append(results, PerformanceResult{
			Performance:   p,
			WeightedScore: WeightedScore(p.CaptionScores),
		})
	}
	show.Performances = nil

	writeJSON(w, struct {
		Show    Show                `json:"show"`
		Results []PerformanceResult `json:"results"`
	}{show, results})
}

func GroupHistoryHandler(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}

	var group Group
	if err := db.DB.Preload("Classification").First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Group not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var perfs []Performance
	if err := db.DB.Preload("Show.Host").Preload("CaptionScores").
		Joins("JOIN scores.shows ON scores.shows.id = scores.performances.show_id").
		Where("group_id = ?", groupID).
		Order("scores.shows.date").
		Find(&perfs).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	results := make([]PerformanceResult, 0, len(perfs))
	for _, p := range perfs {
		results = append(results, PerformanceResult{
			Performance:   p,
			WeightedScore: WeightedScore(p.CaptionScores),
		})
	}

	writeJSON(w, struct {
		Group   Group               `json:"group"`
		History []PerformanceResult `json:"history"`
	}{group, results})
}
