package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/store"
)

// seed-cases publishes the case files from the local data directory into a
// Redis case store, so consoles configured with CASE_STORE=redis can play
// them without shipping the files.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	fsStore := store.NewFSStore(cfg.DataDir, log)
	redisStore, err := store.NewRedisStore(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create redis store", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = redisStore.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := redisStore.Ping(ctx); err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	cases, err := fsStore.ListCases(ctx)
	if err != nil {
		log.Error("Failed to list local cases", "error", err)
		os.Exit(1)
	}
	if len(cases) == 0 {
		log.Error("No cases found", "data_dir", cfg.DataDir)
		os.Exit(1)
	}

	seeded := 0
	for name := range cases {
		c, err := fsStore.GetCase(ctx, name)
		if err != nil {
			log.Error("Failed to load case", "name", name, "error", err)
			os.Exit(1)
		}
		if err := redisStore.Seed(ctx, name, c); err != nil {
			log.Error("Failed to seed case", "name", name, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %s (%s)\n", name, c.Title)
		seeded++
	}

	fmt.Printf("Done: %d case(s) now in Redis at %s\n", seeded, redacted(cfg.RedisURL))
}

// redacted strips credentials from a redis URL for display.
func redacted(url string) string {
	if at := strings.LastIndex(url, "@"); at >= 0 {
		if scheme := strings.Index(url, "://"); scheme >= 0 {
			return url[:scheme+3] + "***" + url[at:]
		}
	}
	return url
}
