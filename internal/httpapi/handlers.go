package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kundankarn/football-battle-bot/internal/battle"
	"github.com/kundankarn/football-battle-bot/internal/cardrepo"
)

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// CardDetail looks a card up across all known cards.
func CardDetail(repo cardrepo.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		c, err := repo.FindCardByName(r.Context(), name)
		if errors.Is(err, cardrepo.ErrNotFound) {
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "lookup failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// BattleSnapshot returns the live session for a participant, if any.
func BattleSnapshot(store *battle.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participant := chi.URLParam(r, "participant")
		s, ok := store.Get(participant)
		if !ok {
			http.Error(w, "no live battle", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, s.Snapshot())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
