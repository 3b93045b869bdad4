package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/kundankarn/football-battle-bot/internal/battle"
	"github.com/kundankarn/football-battle-bot/internal/cardrepo"
	"github.com/kundankarn/football-battle-bot/internal/config"
	"github.com/kundankarn/football-battle-bot/internal/gateway"
	"github.com/kundankarn/football-battle-bot/internal/httpapi"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	var repo cardrepo.Repository
	if cfg.DatabaseURL != "" {
		repo, err = cardrepo.NewPostgres(cfg.DatabaseURL)
	} else {
		repo, err = cardrepo.NewFile(cfg.CardDataFile)
	}
	if err != nil {
		log.Fatal("open card repository", zap.Error(err))
	}

	ctx := context.Background()
	store := battle.NewStore()
	hub := gateway.NewHub(ctx, log)
	eng := battle.NewEngine(ctx, store, repo, hub, log,
		cfg.DraftTimeout, cfg.RoundTimeout)

	handler := httpapi.SetupRoutes(hub, eng, store, repo, log)

	log.Info("listening",
		zap.String("addr", cfg.Addr),
		zap.Duration("draft_timeout", cfg.DraftTimeout),
		zap.Duration("round_timeout", cfg.RoundTimeout),
	)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
