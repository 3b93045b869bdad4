package battle

import (
	"context"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

// Messenger delivers engine output back through the chat platform. Delivery
// is best effort; the engine never fails a session over a send error.
type Messenger interface {
	// SendText sends a private text message to one participant.
	SendText(ctx context.Context, participantID, text string) error

	// SendCard sends a rendered card to one participant's private channel.
	SendCard(ctx context.Context, participantID string, c card.Card) error

	// Announce sends a text message to the public channel.
	Announce(ctx context.Context, text string) error
}
