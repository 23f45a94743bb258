package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vietstay/hotel-booking/internal/availability"
	"github.com/vietstay/hotel-booking/internal/config"
	"github.com/vietstay/hotel-booking/internal/database"
	"github.com/vietstay/hotel-booking/internal/handler"
	"github.com/vietstay/hotel-booking/internal/mail"
	"github.com/vietstay/hotel-booking/internal/obs"
	"github.com/vietstay/hotel-booking/internal/queue"
	"github.com/vietstay/hotel-booking/internal/repository"
	"github.com/vietstay/hotel-booking/internal/router"
	"github.com/vietstay/hotel-booking/internal/search"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns off the quote cache, response
	// cache, rate limiter and email verification, nothing else.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	hotels := repository.NewHotelRepo(db)
	roomTypes := repository.NewRoomTypeRepo(db)
	inventory := repository.NewInventoryRepo(db)
	prices := repository.NewPriceRepo(db)

	metrics := obs.NewMetrics(prometheus.NewRegistry())

	qcfg := config.LoadQuoteCacheConfig()
	var quoteCache availability.Cache
	if rdb != nil && qcfg.Enabled {
		quoteCache = availability.NewRedisCache(rdb, qcfg.TTL)
	}
	quotes := availability.NewService(roomTypes, inventory, prices, quoteCache, qcfg.Prefix, metrics)

	mailer := mail.NewMailer(config.LoadSMTPConfig())
	go func() {
		if err := queue.StartMailConsumer(mailer); err != nil {
			log.Printf("mail consumer stopped: %v", err)
		}
	}()

	meili := search.NewClient(config.LoadMeiliConfig())
	if meili == nil {
		log.Println("meilisearch not configured, /v1/search/hotels disabled")
	}

	authH := handler.NewAuthHandler(cfg, users, tokens, rdb, mailer, metrics)
	ownerH := handler.NewOwnerHandler(hotels, roomTypes, inventory, prices)
	publicH := handler.NewPublicHandler(hotels, roomTypes)
	searchH := handler.NewSearchHandler(meili, metrics)
	quoteH := handler.NewAvailabilityHandler(quotes)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, metrics)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, searchH, quoteH, rdb, metrics)
	router.RegisterOwner(e, ownerH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
