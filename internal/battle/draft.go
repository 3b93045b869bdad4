package battle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

// runDraft grows both initial hands to five. The two sides draft
// concurrently; their step timeouts run from the same phase start, and the
// first fatal error cancels the sibling await.
func (e *Engine) runDraft(ctx context.Context, s *Session) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.draftSide(gctx, s, SideA) })
	g.Go(func() error { return e.draftSide(gctx, s, SideB) })
	return g.Wait()
}

func (e *Engine) draftSide(ctx context.Context, s *Session, side Side) error {
	p := s.participant(side)
	e.sendText(ctx, p, "Select two additional cards to complete your hand of five.")
	e.sendText(ctx, p, "Available cards: "+strings.Join(s.handCopy(side).Names(), ", "))

	for s.handSize(side) < BattleHandSize {
		c, err := e.awaitDraftPick(ctx, s, side)
		if err != nil {
			return err
		}
		e.sendCard(ctx, p, c)
	}
	return nil
}

// awaitDraftPick runs one bounded draft step: it keeps re-prompting on
// unknown or duplicate names within the same deadline, and appends the first
// valid card to the hand. Deadline expiry fails the draft.
func (e *Engine) awaitDraftPick(ctx context.Context, s *Session, side Side) (card.Card, error) {
	stepCtx, cancel := context.WithTimeout(ctx, e.draftTimeout)
	defer cancel()

	p := s.participant(side)
	for {
		text, err := e.await(stepCtx, p)
		if err != nil {
			if ctx.Err() != nil {
				return card.Card{}, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return card.Card{}, ErrDraftTimeout
			}
			return card.Card{}, err
		}

		name := strings.TrimSpace(text)
		c, ok := e.ownedCard(ctx, p, name)
		if !ok {
			e.sendText(ctx, p, fmt.Sprintf("Sorry, I couldn't find '%s' in your collection. Try again.", name))
			continue
		}
		if !s.addCard(side, c) {
			e.sendText(ctx, p, fmt.Sprintf("'%s' is already in your hand. Pick a different card.", c.Name))
			continue
		}
		return c, nil
	}
}
