package cardrepo

import (
	"context"
	"errors"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

var ErrNotFound = errors.New("card not found")

// Repository is the card repository adapter the battle engine queries. It is
// read-only from the engine's point of view.
type Repository interface {
	// OwnedCards returns the participant's full collection, possibly empty.
	OwnedCards(ctx context.Context, participantID string) ([]card.Card, error)

	// FindCardByName looks a card up across all known cards, ignoring case.
	// Returns ErrNotFound on a miss.
	FindCardByName(ctx context.Context, name string) (card.Card, error)
}
