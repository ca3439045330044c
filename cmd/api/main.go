package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"homebase/internal/config"
	"homebase/internal/content"
	"homebase/internal/llm"
	"homebase/internal/llmclient"
	"homebase/internal/pipeline"
	"homebase/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var log *zap.Logger
	if cfg.Env == "local" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	primary := llmclient.Client(llmclient.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel))
	var secondary llmclient.Client
	if gem, gerr := llmclient.NewGeminiClient(ctx, os.Getenv("GEMINI_API_KEY"), cfg.GeminiModel); gerr == nil {
		secondary = gem
	} else {
		log.Warn("secondary provider unavailable", zap.Error(gerr))
	}
	if cfg.GroqAPIKey == "" && os.Getenv("GROQ_API_KEY") == "" {
		log.Warn("GROQ_API_KEY not set; runs will degrade to the deterministic workspace")
	}

	gateway := llm.NewGateway(primary, secondary, llm.Policy{
		MaxAttempts: cfg.Retries + 1,
		Delay:       cfg.RetryDelay,
	}, log)
	defer func() { _ = gateway.Close() }()

	builder := content.NewBuilder(gateway, log)
	pipe := pipeline.New(gateway, builder,
		pipeline.WithLogger(log),
		pipeline.WithPace(cfg.Pace),
		pipeline.WithCacheSize(cfg.ProfileCacheSize),
	)

	handler := server.NewGenerateHandler(pipe, nil, cfg.RunTimeout, log)
	srv := server.New(cfg.Port, server.NewRouter(handler, log), log)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Start(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
