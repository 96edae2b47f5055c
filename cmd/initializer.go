package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"boutiqueBack/internal/config"
	"boutiqueBack/internal/handlers"
	"boutiqueBack/internal/pricing"
	"boutiqueBack/internal/repositories"
	"boutiqueBack/internal/services"
	"boutiqueBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	productHandler     *handlers.ProductHandler
	suggestionHandler  *handlers.SuggestionHandler
	cartHandler        *handlers.CartHandler
	checkoutHandler    *handlers.CheckoutHandler
	transactionHandler *handlers.TransactionHandler
	statsHandler       *handlers.StatsHandler
	priceHandler       *handlers.PriceHandler

	productService *services.ProductService
	priceCache     *services.PriceCache
	priceFeed      *PriceFeed

	db *sql.DB
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	productRepo := repositories.ProductRepository{DB: db}
	transactionRepo := repositories.TransactionRepository{DB: db}

	// Services
	schedule := pricing.Schedule{
		DailyDropPercent: cfg.Pricing.DailyDropPercent,
		FloorPercent:     cfg.Pricing.FloorPercent,
	}
	priceCache := &services.PriceCache{RDB: rdb, TTL: 5 * time.Minute}
	productService := &services.ProductService{ProductRepo: &productRepo, Schedule: schedule, Prices: priceCache}
	cartService := services.NewCartService(productService)
	checkoutService := &services.CheckoutService{Carts: cartService, TransactionRepo: &transactionRepo, Prices: priceCache}
	statsService := &services.StatsService{ProductRepo: &productRepo}

	geminiClient := services.NewGeminiClient(nil, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if cfg.Gemini.BaseURL != "" {
		geminiClient.SetBaseURL(cfg.Gemini.BaseURL)
	}

	imageStore := &utils.ImageStore{
		S3Endpoint: cfg.Storage.S3Endpoint,
		S3Region:   cfg.Storage.S3Region,
		S3Bucket:   cfg.Storage.S3Bucket,
		AccessKey:  cfg.Storage.S3AccessKey,
		SecretKey:  cfg.Storage.S3SecretKey,
		LocalDir:   cfg.Storage.LocalDir,
	}

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		productHandler: &handlers.ProductHandler{
			Service: productService,
			Images:  imageStore,
		},
		suggestionHandler: &handlers.SuggestionHandler{
			Client:   geminiClient,
			Fallback: services.FallbackSuggestion,
			ErrorLog: errorLog,
		},
		cartHandler:        &handlers.CartHandler{Service: cartService},
		checkoutHandler:    &handlers.CheckoutHandler{Service: checkoutService},
		transactionHandler: &handlers.TransactionHandler{Repo: &transactionRepo},
		statsHandler:       &handlers.StatsHandler{Service: statsService},
		priceHandler:       &handlers.PriceHandler{Service: productService, Cache: priceCache},
		productService:     productService,
		priceCache:         priceCache,
		db:                 db,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
