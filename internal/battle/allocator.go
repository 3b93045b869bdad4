package battle

import (
	"context"
	"math/rand"

	"github.com/kundankarn/football-battle-bot/internal/card"
	"github.com/kundankarn/football-battle-bot/internal/cardrepo"
)

// Allocator draws initial hands from participants' owned collections.
type Allocator struct {
	repo cardrepo.Repository
}

func NewAllocator(repo cardrepo.Repository) *Allocator {
	return &Allocator{repo: repo}
}

// sampleHand draws n cards uniformly without replacement, skipping duplicate
// names. Swappable for deterministic tests.
var sampleHand = func(owned []card.Card, n int) Hand {
	var h Hand
	for _, i := range rand.Perm(len(owned)) {
		if h.add(owned[i]) && len(h) == n {
			break
		}
	}
	return h
}

// AllocateBoth draws the initial hand for both sides. Both collections are
// checked before either hand is drawn, so a challenge never partially commits.
func (a *Allocator) AllocateBoth(ctx context.Context, challenger, opponent string) (Hand, Hand, error) {
	ownedA, err := a.repo.OwnedCards(ctx, challenger)
	if err != nil {
		return nil, nil, err
	}
	ownedB, err := a.repo.OwnedCards(ctx, opponent)
	if err != nil {
		return nil, nil, err
	}
	if uniqueNames(ownedA) < InitialHandSize || uniqueNames(ownedB) < InitialHandSize {
		return nil, nil, ErrInsufficientCards
	}
	return sampleHand(ownedA, InitialHandSize), sampleHand(ownedB, InitialHandSize), nil
}

// Allocate draws a single initial hand.
func (a *Allocator) Allocate(ctx context.Context, participantID string) (Hand, error) {
	owned, err := a.repo.OwnedCards(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if uniqueNames(owned) < InitialHandSize {
		return nil, ErrInsufficientCards
	}
	return sampleHand(owned, InitialHandSize), nil
}

func uniqueNames(cards []card.Card) int {
	var seen Hand
	for _, c := range cards {
		seen.add(c)
	}
	return len(seen)
}
