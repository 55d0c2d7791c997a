package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	red "github.com/povarna/generative-ai-agents/prompt-compare/internal/redis"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/setup"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON CompareRequest")
	user := flag.String("u", "", "User prompt (ignored when -d is set)")
	system := flag.String("s", "", "System prompt (ignored when -d is set)")
	stream := flag.String("stream", "", "Stream name (default: COMPARE_REQUEST_STREAM)")
	flag.Parse()

	if *data == "" && *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | producer -u '<user prompt>' [-s '<system prompt>']")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*data, *user, *system, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(data, user, system, stream string) error {
	_ = godotenv.Load()
	cfg := setup.LoadConfig()
	if stream == "" {
		stream = cfg.RequestStream
	}

	req := models.CompareRequest{UserPrompt: user, SystemPrompt: system}
	if data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return fmt.Errorf("invalid request JSON: %w", err)
		}
	}

	ctx := context.Background()
	client, err := red.Connect(ctx, red.Options{
		Addr:       cfg.RedisAddr,
		Password:   cfg.RedisPassword,
		MaxRetries: 3,
	}, &log.Logger)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.NewPublisher(client, stream).Publish(ctx, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("request_id", req.RequestID).Msg("Published successfully!")
	return nil
}
