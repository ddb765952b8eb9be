package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordlesolver/internal/cache"
	"github.com/robalobadob/wordlesolver/internal/httpserver"
	"github.com/robalobadob/wordlesolver/internal/solver"
	"github.com/robalobadob/wordlesolver/internal/store"
	"github.com/robalobadob/wordlesolver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	lists := words.Default()
	a, g := lists.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	c := openCache()
	if c != nil {
		defer c.Close()
	}

	if len(os.Args) > 1 && os.Args[1] == "rank" {
		if err := rank(os.Args[2:], lists, c); err != nil {
			closeCache(c)
			log.Fatal().Err(err).Msg("rank failed")
		}
		return
	}

	ttl := time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour
	mem := store.NewMemoryStore(ttl)
	go sweep(mem, ttl)

	srv := httpserver.New(lists, mem, c, httpserver.Options{
		Secret:       []byte(getEnv("SESSION_SECRET", "dev_secret_change_me")),
		TokenTTL:     ttl,
		Workers:      getEnvInt("RANK_WORKERS", 0),
		ClientOrigin: os.Getenv("CLIENT_ORIGIN"),
	})
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting solver server")
	if err := srv.Start(":" + port); err != nil {
		closeCache(c)
		log.Fatal().Err(err).Msg("server exited")
	}
}

// closeCache flushes the cache before a fatal exit, which skips deferred calls.
func closeCache(c *cache.Store) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		log.Warn().Err(err).Msg("closing cache")
	}
}

// openCache opens CACHE_DB; an empty value disables caching. A cache that
// fails to open is logged and skipped rather than fatal.
func openCache() *cache.Store {
	dsn, ok := os.LookupEnv("CACHE_DB")
	if !ok {
		dsn = "./data/cache.db"
	}
	if dsn == "" {
		return nil
	}
	c, err := cache.Open(dsn)
	if err != nil {
		log.Warn().Err(err).Str("dsn", dsn).Msg("cache disabled")
		return nil
	}
	return c
}

// sweep drops expired sessions periodically.
func sweep(mem *store.Memory, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	t := time.NewTicker(ttl / 4)
	defer t.Stop()
	for range t.C {
		if n := mem.Sweep(); n > 0 {
			log.Info().Int("dropped", n).Msg("expired sessions swept")
		}
	}
}

// rank scores every allowed guess against every answer, logs the top N and
// caches the best.
func rank(args []string, lists *words.Lists, c *cache.Store) error {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	top := fs.Int("top", 10, "number of guesses to report")
	workers := fs.Int("workers", getEnvInt("RANK_WORKERS", 0), "concurrent scorers, 0 = GOMAXPROCS")
	if err := fs.Parse(args); err != nil {
		return err
	}

	allowed, pool := lists.Allowed(), lists.Answers()
	bar := progressbar.Default(int64(len(allowed)), "scoring")
	start := time.Now()
	ranked, err := solver.Rank(context.Background(), allowed, pool, solver.RankOptions{
		Workers:  *workers,
		Progress: func() { _ = bar.Add(1) },
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()
	log.Info().Int("guesses", len(ranked)).Int("pool", len(pool)).Dur("took", time.Since(start)).Msg("ranked")

	for i, s := range ranked {
		if i >= *top {
			break
		}
		fmt.Printf("%3d  %s  %.4f bits  (score %.4f)\n", i+1, s.Guess, s.Entropy, s.Score)
	}

	if c == nil {
		return nil
	}
	best := ranked[0]
	key := cache.Fingerprint(allowed, pool)
	return c.Put(context.Background(), key, cache.Entry{
		Guess: best.Guess, Entropy: best.Entropy, Score: best.Score,
		PoolSize: len(pool), AllowedSize: len(allowed),
	})
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
