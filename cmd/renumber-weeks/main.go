package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// Ingestion computes a show's week once, at ingestion time, and never
// renumbers its neighbors. Backfilling an earlier-dated sheet therefore
// leaves later shows with stale week ordinals. This tool renumbers one
// whole season in a single transaction.
func main() {
	year := flag.Int("year", 0, "season year to renumber")
	dryRun := flag.Bool("dry-run", false, "report without writing")
	flag.Parse()

	if *year == 0 {
		log.Fatal("usage: renumber-weeks -year 2024 [-dry-run]")
	}

	_ = godotenv.Load(".env.local")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer db.Close()

	var seasonID string
	err = db.QueryRow(`SELECT id FROM scores.seasons WHERE year = $1`, *year).Scan(&seasonID)
	if err == sql.ErrNoRows {
		log.Fatalf("no season for year %d", *year)
	} else if err != nil {
		log.Fatalf("look up season: %v", err)
	}

	// week = 1 + count of same-season shows dated strictly earlier, which
	// is RANK() over date (date ties share a week).
	const stale = `
		SELECT count(*)
		FROM scores.shows s
		JOIN (
			SELECT id, RANK() OVER (ORDER BY date) AS week
			FROM scores.shows
			WHERE season_id = $1
		) ranked ON ranked.id = s.id
		WHERE s.week <> ranked.week`

	var staleCount int
	if err := db.QueryRow(stale, seasonID).Scan(&staleCount); err != nil {
		log.Fatalf("count stale weeks: %v", err)
	}
	fmt.Printf("Season %d: %d show(s) with stale week numbers\n", *year, staleCount)

	if *dryRun || staleCount == 0 {
		return
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE scores.shows AS s
		SET week = ranked.week
		FROM (
			SELECT id, RANK() OVER (ORDER BY date) AS week
			FROM scores.shows
			WHERE season_id = $1
		) ranked
		WHERE s.id = ranked.id AND s.week <> ranked.week`, seasonID)
	if err != nil {
		log.Fatalf("renumber: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("commit: %v", err)
	}

	affected, _ := result.RowsAffected()
	fmt.Printf("✓ Renumbered %d show(s) for season %d\n", affected, *year)
}
