package scores

import (
	"log"

	"github.com/CircuitStats/CS-Backend/internal/db"
)

func Init() {
	// Ensure the scores schema exists first
	if err := db.EnsureSchema(db.DB, "scores"); err != nil {
		log.Fatal("Failed to create scores schema: ", err)
	}

	if err := db.DB.AutoMigrate(
		&Season{}, &CaptionWeight{}, &HostLocation{}, &Show{},
		&Classification{}, &Group{}, &Performance{}, &CaptionScore{},
		&Judge{}, &JudgeAssignment{},
	); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
