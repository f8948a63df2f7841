package main

import (
	"flag"
	"log"

	"github.com/CircuitStats/CS-Backend/internal/db"
	"github.com/CircuitStats/CS-Backend/internal/scores"
	"github.com/CircuitStats/CS-Backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	weightsPath := flag.String("weights", "seeds/caption_weights.yml", "caption weights YAML file")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	db.Connect()
	scores.Init()

	if err := seeds.SeedAll(*weightsPath); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
