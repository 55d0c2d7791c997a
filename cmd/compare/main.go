package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/prechecks"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/report"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/setup"
	applogger "github.com/povarna/generative-ai-agents/prompt-compare/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	user := flag.String("u", "", "User prompt")
	system := flag.String("s", "", "System prompt (optional)")
	id := flag.String("id", "", "Request ID (generated when empty)")
	asJSON := flag.Bool("json", false, "Print the ComparisonResult as JSON")
	plain := flag.Bool("plain", false, "Disable scientific formatting of response text")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: compare -u '<user prompt>' [-s '<system prompt>']")
		flag.PrintDefaults()
		os.Exit(2)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	_ = godotenv.Load()
	cfg := setup.LoadConfig()
	logger := applogger.New(cfg.LogLevel, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	result, err := deps.Executor.Execute(ctx, models.CompareRequest{
		RequestID:    *id,
		UserPrompt:   *user,
		SystemPrompt: *system,
	})
	if err != nil {
		if errors.Is(err, prechecks.ErrInvalidPrompt) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logger.Fatal().Err(err).Msg("Comparison failed")
	}

	if *asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			logger.Fatal().Err(err).Msg("Failed to encode result")
		}
		return
	}

	if err := report.Write(os.Stdout, result, report.Options{Scientific: !*plain}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to write report")
	}
}
