package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/bjisadorozco/book-reviews-api/internal/repository/sqlconnect"
	"github.com/bjisadorozco/book-reviews-api/internal/seed"
	"github.com/bjisadorozco/book-reviews-api/internal/timefmt"
	"github.com/joho/godotenv"
)

func main() {
	truncate := flag.Bool("truncate", false, "Clear books and reviews before seeding")
	flag.Parse()

	_ = godotenv.Load(".env")

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *truncate {
		log.Println("Truncating tables...")
		if err := seed.Truncate(ctx, db); err != nil {
			log.Fatalf("Truncate failed: %v", err)
		}
	}

	nBooks, nReviews, err := seed.Load(ctx, db, timefmt.New(timefmt.Bogota))
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d books and %d reviews", nBooks, nReviews)
}
