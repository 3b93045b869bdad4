package cardrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

// ownerRecord mirrors one entry of the collection data file: a participant
// identity plus the cards they own.
type ownerRecord struct {
	UserID string      `json:"user_id"`
	Cards  []card.Card `json:"cards"`
}

// File serves card collections from a JSON data file loaded once at startup.
type File struct {
	owned map[string][]card.Card
	all   []card.Card
}

// NewFile reads the collection file. The file maps arbitrary group names to
// lists of owner records; grouping is ignored, only ownership matters.
func NewFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card data: %w", err)
	}

	var groups map[string][]ownerRecord
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("parse card data: %w", err)
	}

	f := &File{owned: make(map[string][]card.Card)}
	for _, owners := range groups {
		for _, o := range owners {
			f.owned[o.UserID] = append(f.owned[o.UserID], o.Cards...)
			f.all = append(f.all, o.Cards...)
		}
	}
	return f, nil
}

func (f *File) OwnedCards(_ context.Context, participantID string) ([]card.Card, error) {
	return f.owned[participantID], nil
}

func (f *File) FindCardByName(_ context.Context, name string) (card.Card, error) {
	for _, c := range f.all {
		if c.Is(name) {
			return c, nil
		}
	}
	return card.Card{}, ErrNotFound
}
