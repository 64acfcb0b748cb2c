// Command seed populates the database with the skill catalog and demo data.
package main

import (
	"flag"
	"log"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of demo users to create")
	maxSkills := flag.Int("max-skills", 4, "Maximum declared skills per user")
	catalogOnly := flag.Bool("catalog-only", false, "Seed only the skill catalog")
	seedVal := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Skills(db); err != nil {
		log.Fatalf("Skill catalog seeding failed: %v", err)
	}
	log.Printf("Skill catalog seeded (%d entries)", len(seed.BuiltInSkills))

	if *catalogOnly {
		return
	}

	if err := seed.DemoUsers(db, seed.DemoOptions{
		NumUsers:  *numUsers,
		MaxSkills: *maxSkills,
		Seed:      *seedVal,
	}); err != nil {
		log.Fatalf("Demo data seeding failed: %v", err)
	}
}
