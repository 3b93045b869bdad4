package gateway

import (
	"context"

	"go.uber.org/zap"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

type hubMsg interface{ isHubMsg() }

type join struct {
	ID     string
	Outbox chan ServerMessage
}

type leave struct {
	ID     string
	Outbox chan ServerMessage
}

type direct struct {
	To  string
	Msg ServerMessage
}

type announce struct{ Msg ServerMessage }

type shutdown struct{}

func (join) isHubMsg()     {}
func (leave) isHubMsg()    {}
func (direct) isHubMsg()   {}
func (announce) isHubMsg() {}
func (shutdown) isHubMsg() {}

// Hub routes outbound messages to connected participants, keyed by platform
// identity. It stands in for the chat platform's delivery side and implements
// battle.Messenger. All connection state is owned by the hub loop.
type Hub struct {
	inbox  chan hubMsg
	conns  map[string]chan ServerMessage
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan hubMsg, 64),
		conns:  make(map[string]chan ServerMessage),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.closeAll()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case join:
				// A reconnect replaces the previous connection.
				if old, ok := h.conns[msg.ID]; ok {
					close(old)
				}
				h.conns[msg.ID] = msg.Outbox

			case leave:
				// Only the connection that still owns the entry may clear
				// it; a stale departure after a reconnect must not touch
				// the replacement.
				if ch, ok := h.conns[msg.ID]; ok && ch == msg.Outbox {
					close(ch)
					delete(h.conns, msg.ID)
				}

			case direct:
				if ch, ok := h.conns[msg.To]; ok {
					h.deliver(msg.To, ch, msg.Msg)
				} else {
					h.log.Debug("participant offline, message dropped", zap.String("participant", msg.To))
				}

			case announce:
				for id, ch := range h.conns {
					h.deliver(id, ch, msg.Msg)
				}

			case shutdown:
				h.closeAll()
				h.cancel()
				return
			}
		}
	}
}

// deliver writes without blocking; a client that cannot keep up is dropped.
func (h *Hub) deliver(id string, ch chan ServerMessage, msg ServerMessage) {
	select {
	case ch <- msg:
	default:
		close(ch)
		delete(h.conns, id)
		h.log.Warn("dropping slow client", zap.String("participant", id))
	}
}

func (h *Hub) closeAll() {
	for id, ch := range h.conns {
		close(ch)
		delete(h.conns, id)
	}
}

// Join registers a participant's outbox. The hub closes the outbox when the
// participant leaves, reconnects, or the hub shuts down.
func (h *Hub) Join(id string, outbox chan ServerMessage) {
	h.inbox <- join{ID: id, Outbox: outbox}
}

// Leave clears the participant's entry, but only if outbox is the connection
// currently registered for it.
func (h *Hub) Leave(id string, outbox chan ServerMessage) {
	h.inbox <- leave{ID: id, Outbox: outbox}
}

func (h *Hub) Shutdown() {
	h.inbox <- shutdown{}
}

// SendText implements battle.Messenger.
func (h *Hub) SendText(_ context.Context, participantID, text string) error {
	h.inbox <- direct{To: participantID, Msg: ServerMessage{Type: "Text", Text: text}}
	return nil
}

// SendCard implements battle.Messenger.
func (h *Hub) SendCard(_ context.Context, participantID string, c card.Card) error {
	h.inbox <- direct{To: participantID, Msg: ServerMessage{Type: "Card", Text: c.Detail(), Card: &c}}
	return nil
}

// Announce implements battle.Messenger: delivery to the public channel, here
// every connected participant.
func (h *Hub) Announce(_ context.Context, text string) error {
	h.inbox <- announce{Msg: ServerMessage{Type: "Announce", Text: text}}
	return nil
}
