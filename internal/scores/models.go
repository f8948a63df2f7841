package scores

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Season is one yearly competitive cycle, e.g. 2024.
type Season struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Year           int             `gorm:"uniqueIndex" json:"year"`
	Shows          []Show          `gorm:"foreignKey:SeasonID" json:"shows,omitempty"`
	CaptionWeights []CaptionWeight `gorm:"foreignKey:SeasonID" json:"caption_weights,omitempty"`
}

// CaptionWeight is the scoring weight (percent, 0-100) of one caption for
// one season. Weights are looked up, never computed.
type CaptionWeight struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SeasonID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_season_caption" json:"season_id"`
	Caption  string    `gorm:"uniqueIndex:uq_season_caption" json:"caption"`
	Weight   float64   `json:"weight"`
}

// HostLocation is a host school or venue, e.g. "Arcadia HS". The natural
// key is the exact (name, city, state) triple; near-duplicate spellings are
// not merged.
type HostLocation struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"uniqueIndex:uq_host_identity" json:"name"`
	City  string    `gorm:"uniqueIndex:uq_host_identity" json:"city"`
	State string    `gorm:"uniqueIndex:uq_host_identity" json:"state"`
	Shows []Show    `gorm:"foreignKey:HostID" json:"shows,omitempty"`
}

// Show is one competition event at one host on one date. PDFName is the
// source file the show was ingested from and its idempotency key:
// re-ingesting the same file updates the show in place and replaces its
// performances wholesale.
type Show struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `json:"name"` // distinguishes e.g. Saturday vs Sunday
	Date        time.Time      `gorm:"type:date" json:"date"`
	Week        int            `json:"week"`
	PDFName     string         `gorm:"uniqueIndex" json:"pdf_name"`
	IngestNotes pq.StringArray `gorm:"type:text[]" json:"ingest_notes,omitempty"`

	SeasonID uuid.UUID `gorm:"type:uuid" json:"season_id"`
	HostID   uuid.UUID `gorm:"type:uuid" json:"host_id"`

	Season       *Season       `gorm:"foreignKey:SeasonID" json:"season,omitempty"`
	Host         *HostLocation `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Performances []Performance `gorm:"foreignKey:ShowID" json:"performances,omitempty"`
}

// Classification is a competitive division, e.g. "Percussion Scholastic A".
// "Unknown" is a legitimate placeholder when a page header gives none.
type Classification struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"uniqueIndex" json:"name"`
	Groups []Group   `gorm:"foreignKey:ClassificationID" json:"groups,omitempty"`
}

// Group is a competing ensemble. Classification is a point-in-time
// attribute taken from the most recent ingestion context, not versioned.
type Group struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"uniqueIndex:uq_group_identity" json:"name"`
	HomeCity string    `gorm:"uniqueIndex:uq_group_identity" json:"home_city"`

	ClassificationID uuid.UUID       `gorm:"type:uuid" json:"classification_id"`
	Classification   *Classification `gorm:"foreignKey:ClassificationID" json:"classification,omitempty"`
}

// Performance is one group's scored result at one show. Rows only exist
// for totals that were positive at ingestion time.
type Performance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShowID      uuid.UUID `gorm:"type:uuid;index" json:"show_id"`
	GroupID     uuid.UUID `gorm:"type:uuid;index" json:"group_id"`
	BlockNumber *int      `json:"block_number,omitempty"`
	TotalScore  float64   `json:"total_score"`
	Placement   int       `json:"placement"`
	Penalty     float64   `gorm:"default:0" json:"penalty"`

	Group         *Group         `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Show          *Show          `gorm:"foreignKey:ShowID" json:"show,omitempty"`
	CaptionScores []CaptionScore `gorm:"foreignKey:PerformanceID" json:"caption_scores,omitempty"`
}

// CaptionScore is the per-caption breakdown of one performance. Weight is a
// snapshot of the season's CaptionWeight at ingestion time. JudgeID stays
// nil for sheet-aggregated data.
type CaptionScore struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PerformanceID uuid.UUID `gorm:"type:uuid;index" json:"performance_id"`
	Caption       string    `json:"caption"`
	Weight        float64   `json:"weight"`
	CompScore     float64   `json:"comp_score"`
	PerfScore     float64   `json:"perf_score"`
	Placement     int       `json:"placement"`

	JudgeID *uuid.UUID `gorm:"type:uuid" json:"judge_id,omitempty"`
	Judge   *Judge     `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
}

// Judge is schema-only for now: per-judge sheets are not ingested yet.
type Judge struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}

// JudgeAssignment records which caption a judge adjudicated at a show.
// Schema-only, populated by nothing in this pipeline.
type JudgeAssignment struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShowID  uuid.UUID `gorm:"type:uuid" json:"show_id"`
	JudgeID uuid.UUID `gorm:"type:uuid" json:"judge_id"`
	Caption string    `json:"caption"`
}

func (Season) TableName() string {
	return "scores.seasons"
}

func (CaptionWeight) TableName() string {
	return "scores.caption_weights"
}

func (HostLocation) TableName() string {
	return "scores.hosts"
}

func (Show) TableName() string {
	return "scores.shows"
}

func (Classification) TableName() string {
	return "scores.classifications"
}

func (Group) TableName() string {
	return "scores.groups"
}

func (Performance) TableName() string {
	return "scores.performances"
}

func (CaptionScore) TableName() string {
	return "scores.caption_scores"
}

func (Judge) TableName() string {
	return "scores.judges"
}

func (JudgeAssignment) TableName() string {
	return "scores.judge_assignments"
}
