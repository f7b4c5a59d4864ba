package storage

import (
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

var Redis *redis.Client

func InitializeRedis() *redis.Client {
	// Get Redis URL from environment, fallback to localhost for development
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		log.Warn().Msg("REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "",
		DB:       0,
	})

	log.Info().Str("addr", redisURL).Msg("🔧 Redis initialized")
	return Redis
}
