package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/kundankarn/football-battle-bot/internal/battle"
)

// Handler upgrades a participant connection and bridges frames between the
// websocket and the battle engine. The participant's platform identity comes
// from the id query parameter.
func Handler(h *Hub, eng *battle.Engine, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan ServerMessage, 8)
		h.Join(id, out)
		defer h.Leave(id, out)

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
			// The hub closed the outbox (leave, reconnect, or shutdown);
			// tear the socket down so the read loop unblocks promptly.
			_ = conn.Close(websocket.StatusGoingAway, "connection superseded")
		}()

		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}
			dispatch(r.Context(), conn, eng, log, id, cm)
		}
	}
}

func dispatch(ctx context.Context, conn *websocket.Conn, eng *battle.Engine, log *zap.Logger, id string, cm ClientMessage) {
	switch cm.Type {
	case "Challenge":
		if _, err := eng.Challenge(ctx, id, cm.Opponent); err != nil {
			writeError(ctx, conn, challengeError(err))
		}

	case "Accept":
		if err := eng.Accept(ctx, id); err != nil {
			writeError(ctx, conn, "No pending battle found.")
		}

	case "Card":
		if err := eng.ShowCard(ctx, id, cm.Name); err != nil && !errors.Is(err, battle.ErrUnknownCard) {
			log.Warn("card lookup failed", zap.String("participant", id), zap.Error(err))
		}

	case "Say":
		// Free text only means something while a step is awaiting it.
		eng.Deliver(id, cm.Text)

	default:
		writeError(ctx, conn, "unknown type")
	}
}

func challengeError(err error) string {
	switch {
	case errors.Is(err, battle.ErrAlreadyInBattle):
		return "One of the players is already in a battle."
	case errors.Is(err, battle.ErrInsufficientCards):
		return "One of the players doesn't have enough cards to battle! Both players need at least 3 cards."
	case errors.Is(err, battle.ErrSelfChallenge):
		return "You can't battle yourself."
	default:
		return "Could not start the battle."
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(ServerMessage{Type: "Error", Error: msg})
	wctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}
