package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/smartscrabble/internal/api"
	"github.com/mcoot/smartscrabble/internal/config"
	"github.com/mcoot/smartscrabble/internal/factory"
)

func main() {
	configFile := flag.String("config", "", "config file (env: SMARTSCRABBLE_CONFIG)")
	flag.Parse()

	// A .env file is optional
	_ = godotenv.Load()

	appCfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level, _ := appCfg.SlogLevel()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Build factory config from the loaded configuration
	cfg, err := factory.ConfigFrom(appCfg, logger)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create application factory; the dictionary is loaded here
	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		APITokenHash:      appCfg.APITokenHash,
		DictionaryService: app.DictionaryService,
		BoardService:      app.BoardService,
		BotService:        app.BotService,
		GameController:    app.GameController,
		TournamentService: app.TournamentService,
	})
	if appCfg.APITokenHash == "" {
		logger.Warn("no api_token_hash configured, write routes are open")
	}

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = appCfg.Host
	serverConfig.Port = appCfg.Port
	server := api.NewServer(router, serverConfig, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", appCfg.StorageType),
		slog.Int("words", app.DictionaryService.WordCount()),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
