package main

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	mw "github.com/bjisadorozco/book-reviews-api/internal/api/middlewares"
	"github.com/bjisadorozco/book-reviews-api/internal/api/router"
	"github.com/bjisadorozco/book-reviews-api/internal/repository/sqlconnect"
	"github.com/bjisadorozco/book-reviews-api/internal/timefmt"
	"github.com/bjisadorozco/book-reviews-api/internal/validate"
	"github.com/bjisadorozco/book-reviews-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load(".env")

	if err := validate.Env(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}
	for _, warn := range validate.HardeningWarnings(os.Getenv("APP_ENV")) {
		log.Printf("[WARN] %s\n", warn)
	}

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer db.Close()
	fmt.Println("✅ Connected to Postgres")

	// All displayed timestamps use one fixed civil zone (default UTC-5).
	offset := envInt("DISPLAY_UTC_OFFSET", -5)
	formatter := timefmt.New(timefmt.FixedOffset(offset))

	// Rate limiting: Redis-backed when configured, per-process otherwise.
	var limiters []utils.Middleware
	if rdb := redisFromEnv(); rdb != nil {
		if err := validate.PingRedis(rdb, 3*time.Second); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		fmt.Println("✅ Connected to Redis")
		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))
		limiters = []utils.Middleware{tb.Middleware, sw.Middleware}
	} else {
		limiters = []utils.Middleware{mw.LocalRateLimit(5, 20)}
	}

	chain := []utils.Middleware{
		mw.RequestID,
		mw.Recovery,
		mw.Cors,
		mw.ResponseTimeMiddleware,
		mw.HPP(mw.DefaultHPPOptions()),
	}
	chain = append(chain, limiters...)
	chain = append(chain,
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
	)

	secureMux := utils.ApplyMiddleware(router.Router(db, formatter), chain...)

	port := ":" + strconv.Itoa(envInt("PORT", 8000))
	server := &http.Server{
		Addr:         port,
		Handler:      secureMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	fmt.Println("Server is running on port:", port)

	// TLS only when a cert pair is provided; local client dev runs plain HTTP.
	cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")
	if cert != "" && key != "" {
		server.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		err = server.ListenAndServeTLS(cert, key)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

// redisFromEnv builds a client from either a full Upstash URL or split
// fields; returns nil when neither is configured.
func redisFromEnv() *redis.Client {
	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
		if err != nil {
			log.Fatalf("invalid UPSTASH_REDIS_URL: %v", err)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		return redis.NewClient(opt)
	}

	addr := os.Getenv("REDIS_ADDR") // host:port (no scheme)
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     os.Getenv("REDIS_USER"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
