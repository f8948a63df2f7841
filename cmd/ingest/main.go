package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/CircuitStats/CS-Backend/internal/db"
	"github.com/CircuitStats/CS-Backend/internal/extract"
	"github.com/CircuitStats/CS-Backend/internal/ingest"
	"github.com/CircuitStats/CS-Backend/internal/pdftext"
	"github.com/CircuitStats/CS-Backend/internal/scores"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	dir := flag.String("dir", "", "directory of score sheet PDFs")
	extractor := flag.String("extractor", os.Getenv("TABLE_EXTRACTOR"), "table extractor command")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *dir == "" {
		log.Fatal("usage: ingest -dir /path/to/pdf_folder [-extractor cmd]")
	}
	if *extractor == "" {
		log.Fatal("no table extractor configured: pass -extractor or set TABLE_EXTRACTOR")
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	_ = godotenv.Load(".env.local")
	db.Connect()
	scores.Init()

	src := ingest.Sources{
		Tables: extract.FallbackTableSource{
			Primary:   extract.NewLatticeSource(*extractor),
			Secondary: extract.NewStreamSource(*extractor),
		},
		Text: pdftext.Source{},
	}

	// os.ReadDir returns entries sorted by name, which fixes the batch
	// order.
	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("read dir: %v", err)
	}

	ingested, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		if err := ingest.Ingest(db.DB, src, path); err != nil {
			// One bad sheet never stops the batch.
			logrus.WithField("file", entry.Name()).WithError(err).Error("ingest failed")
			failed++
			continue
		}
		ingested++
	}

	logrus.WithFields(logrus.Fields{"ingested": ingested, "failed": failed}).Info("batch done")
}
