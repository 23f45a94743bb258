package main // Entry point package

// sync-hotels rebuilds the Meilisearch hotels index from MySQL.  Run it
// after bulk imports or whenever the index drifts from the database;
// documents are keyed by hotel id so re-running is idempotent.

import (
	"context"
	"log"
	"time"

	"github.com/vietstay/hotel-booking/internal/config"
	"github.com/vietstay/hotel-booking/internal/database"
	"github.com/vietstay/hotel-booking/internal/repository"
	"github.com/vietstay/hotel-booking/internal/search"
)

func main() {
	cfg := config.Load()

	meili := search.NewClient(config.LoadMeiliConfig())
	if meili == nil {
		log.Fatal("MEILI_HOST is not set")
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer db.Close()

	hotels := repository.NewHotelRepo(db)
	roomTypes := repository.NewRoomTypeRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := meili.EnsureIndex(ctx); err != nil {
		log.Fatalf("ensure index: %v", err)
	}

	all, err := hotels.ListAll(ctx)
	if err != nil {
		log.Fatalf("list hotels: %v", err)
	}

	docs := make([]search.HotelDoc, 0, len(all))
	for _, h := range all {
		from, to, err := roomTypes.PriceSpan(ctx, h.ID)
		if err != nil {
			log.Fatalf("price span for %s: %v", h.ID, err)
		}
		docs = append(docs, search.DocFromHotel(h, from, to))
	}

	if err := meili.IndexHotels(ctx, docs); err != nil {
		log.Fatalf("index hotels: %v", err)
	}
	log.Printf("indexed %d hotels into %q", len(docs), config.LoadMeiliConfig().IndexName)
}
