package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Prefix every log line with the service name; keep the timestamp.
	log.SetPrefix("sahha-go-api: ")

	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env loaded, using process environment: %v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("[main] config: %v", err)
	}

	ctx := context.Background()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = newRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("[main] %v", err)
		}
		defer rdb.Close()
	}

	h := &Handler{now: time.Now}
	switch cfg.Storage {
	case storagePostgres:
		pool := getDBPool(ctx, cfg.DBURL)
		defer pool.Close()
		h.store = newPGStore(pool)
	case storageRedis:
		h.store = newKVStore(rdb)
	}

	if rdb != nil {
		h.cache = newEstimateCache(rdb, cfg.EstimateCacheTTL)
	}
	if cfg.GeminiAPIKey != "" {
		h.analyzer = newGeminiAnalyzer(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	} else {
		log.Println("[main] GEMINI_API_KEY not set; /api/analyze will return 503")
	}

	log.Printf("Starting gin app on %s (storage=%s)...", cfg.Addr, cfg.Storage)

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("[main] server: %v", err)
	}
}
