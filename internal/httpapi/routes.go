package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kundankarn/football-battle-bot/internal/battle"
	"github.com/kundankarn/football-battle-bot/internal/cardrepo"
	"github.com/kundankarn/football-battle-bot/internal/gateway"
)

func SetupRoutes(h *gateway.Hub, eng *battle.Engine, store *battle.Store, repo cardrepo.Repository, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/cards/{name}", CardDetail(repo))
	r.Get("/battles/{participant}", BattleSnapshot(store))
	r.Get("/ws", gateway.Handler(h, eng, log))
	return r
}
