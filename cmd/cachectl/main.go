package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"payment-config-service/internal/cache"
)

// cachectl is an operator tool for the lookup cache: clear the
// namespace, read the current versions, or check connectivity.
func main() {
	addr := flag.String("addr", envOr("REDIS_ADDR", "localhost:6379"), "redis address")
	password := flag.String("password", os.Getenv("REDIS_PASSWORD"), "redis password")
	db := flag.Int("db", 0, "redis database")
	entity := flag.String("entity", "", "entity name for index-version commands")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: cachectl [flags] clear|version|bump|ping")
		os.Exit(2)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})

	client := redis.NewClient(&redis.Options{Addr: *addr, Password: *password, DB: *db})
	store := cache.NewRedisStore(client)
	lookupCache := cache.NewLookupCache(store, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	switch command {
	case "clear":
		err = lookupCache.ClearCache(ctx)
		if err == nil {
			fmt.Println("lookup cache cleared")
		}
	case "version":
		if *entity == "" {
			err = fmt.Errorf("version requires -entity")
			break
		}
		fmt.Printf("%s index version: %d\n", *entity, lookupCache.IndexVersion(ctx, *entity))
	case "bump":
		if *entity == "" {
			err = fmt.Errorf("bump requires -entity")
			break
		}
		fmt.Printf("%s index version now %d\n", *entity, lookupCache.BumpIndexVersion(ctx, *entity))
	case "ping":
		err = store.Ping(ctx)
		if err == nil {
			fmt.Println("ok")
		}
	default:
		err = fmt.Errorf("unknown command %q", command)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "cachectl:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
