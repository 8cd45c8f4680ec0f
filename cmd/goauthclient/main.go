// Command goauthclient runs the terminal client against a remote auth
// service.
//
// Configuration comes from the environment (a .env file is loaded when
// present):
//
//	AUTH_API_BASE   base path of the auth API (default http://localhost:8080/api/auth)
//	TOKEN_PATH      file used for durable token storage (default ~/.goauthclient/token)
//	REDIS_ADDR      when set, tokens persist to Redis at this address instead of disk
//	REDIS_KEY       Redis key for the token (default goauthclient:token)
//	DEBUG           when non-empty, verbose logging to stderr
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	goAuthClient "github.com/MrEthical07/goAuthClient"
	"github.com/MrEthical07/goAuthClient/guard"
	"github.com/MrEthical07/goAuthClient/session"
	"github.com/MrEthical07/goAuthClient/tui"
)

func main() {
	_ = godotenv.Load()

	logger := zap.NewNop()
	if os.Getenv("DEBUG") != "" {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger init:", err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()

	cfg := goAuthClient.DefaultConfig()
	if base := os.Getenv("AUTH_API_BASE"); base != "" {
		cfg.API.BaseURL = base
	}

	tokens, err := tokenStoreFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "token store:", err)
		os.Exit(1)
	}

	sink := goAuthClient.NewChannelSink(16)

	client, err := goAuthClient.New().
		WithConfig(cfg).
		WithTokenStore(tokens).
		WithNoticeSink(sink).
		WithLogger(logger).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "client init:", err)
		os.Exit(1)
	}
	defer client.Close()

	g := guard.New(client, client.Session())

	if err := tui.Run(client, g, sink.Notices()); err != nil {
		fmt.Fprintln(os.Stderr, "tui:", err)
		os.Exit(1)
	}
}

func tokenStoreFromEnv() (session.TokenStore, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		return session.NewRedisTokenStore(rdb, os.Getenv("REDIS_KEY")), nil
	}

	path := os.Getenv("TOKEN_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".goauthclient", "token")
	}
	return session.NewFileTokenStore(path), nil
}
