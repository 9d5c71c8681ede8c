package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/sant0-9/nebulaextract/internal/config"
	"github.com/sant0-9/nebulaextract/internal/llm"
	"github.com/sant0-9/nebulaextract/internal/logger"
	"github.com/sant0-9/nebulaextract/internal/pipeline"
	"github.com/sant0-9/nebulaextract/internal/tui"
)

var version = "dev"

func main() {
	text := flag.String("text", "", "client text to analyze (omit to paste it interactively)")
	flag.Parse()

	if err := run(context.Background(), *text, os.Stdin, os.Stdout); err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, text string, stdin *os.File, stdout io.Writer) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("starting", zap.String("version", version), zap.String("model", cfg.Model))
	if !config.IsKnownModel(cfg.Model) {
		log.Warn("unknown model id, sending it anyway", zap.String("model", cfg.Model))
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		return err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(llm.GeminiConfig{
		APIKey:    apiKey,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		Timeout:   timeout,
		Auth:      cfg.Auth,
		APIKeyEnv: cfg.APIKeyEnv,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	if text == "" {
		text, err = readInput(stdin, stdout)
		if err != nil {
			return err
		}
	}

	_, err = pipeline.New(client, stdout, log).Run(ctx, text)
	return err
}

func readInput(stdin *os.File, stdout io.Writer) (string, error) {
	fmt.Fprintln(stdout, tui.Banner())
	if !isatty.IsTerminal(stdin.Fd()) && !isatty.IsCygwinTerminal(stdin.Fd()) {
		return tui.ReadLines(stdin)
	}

	text, err := tui.CollectLines(stdin, stdout)
	if errors.Is(err, tui.ErrAborted) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return text, nil
}
