package battle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

// declaration is side A's answer for a round: a card from their hand plus the
// stat both sides will be compared on.
type declaration struct {
	card card.Card
	stat string
}

// parseDeclaration parses "card name words... stat". The last field is the
// stat, everything before it the card name.
func parseDeclaration(text string, hand Hand) (declaration, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return declaration{}, fmt.Errorf("%w: expected card name followed by a stat", ErrInvalidSelection)
	}
	stat := strings.ToLower(fields[len(fields)-1])
	name := strings.Join(fields[:len(fields)-1], " ")
	if !card.ValidStat(stat) {
		return declaration{}, fmt.Errorf("%w: unknown stat %q", ErrInvalidSelection, stat)
	}
	c, ok := hand.Find(name)
	if !ok {
		return declaration{}, fmt.Errorf("%w: %q is not in your hand", ErrInvalidSelection, name)
	}
	return declaration{card: c, stat: stat}, nil
}

// parseCardChoice parses side B's answer: a bare card name from their hand.
func parseCardChoice(text string, hand Hand) (card.Card, error) {
	name := strings.TrimSpace(text)
	c, ok := hand.Find(name)
	if !ok {
		return card.Card{}, fmt.Errorf("%w: %q is not in your hand", ErrInvalidSelection, name)
	}
	return c, nil
}

// runRounds plays up to MaxRounds head-to-head rounds. Each round the losing
// side's chosen card is removed and the winner scores; equal values remove
// and score nothing. An emptied hand ends the battle early.
func (e *Engine) runRounds(ctx context.Context, s *Session) error {
	for round := 1; round <= MaxRounds; round++ {
		e.announce(ctx, fmt.Sprintf("Round %d begins!", round))
		e.presentHands(ctx, s)

		declA, cardB, err := e.awaitRound(ctx, s)
		if err != nil {
			return err
		}

		valueA, _ := declA.card.Stat(declA.stat)
		valueB, _ := cardB.Stat(declA.stat)

		switch {
		case valueA > valueB:
			s.removeCard(SideB, cardB.Name)
			winner := SideA
			s.roundDone(&winner)
			e.announce(ctx, fmt.Sprintf("Round %d winner: %s (%s %s %v beats %s %v)",
				round, s.ChallengerID, declA.card.Name, declA.stat, valueA, cardB.Name, valueB))
		case valueB > valueA:
			s.removeCard(SideA, declA.card.Name)
			winner := SideB
			s.roundDone(&winner)
			e.announce(ctx, fmt.Sprintf("Round %d winner: %s (%s %s %v beats %s %v)",
				round, s.OpponentID, cardB.Name, declA.stat, valueB, declA.card.Name, valueA))
		default:
			s.roundDone(nil)
			e.announce(ctx, fmt.Sprintf("Round %d is a tie on %s (%v). No card is lost.", round, declA.stat, valueA))
		}

		if s.handSize(SideA) == 0 || s.handSize(SideB) == 0 {
			break
		}
	}
	return nil
}

func (e *Engine) presentHands(ctx context.Context, s *Session) {
	e.sendText(ctx, s.ChallengerID,
		"Choose a card and a stat (Rating, APPS, AGR, SV, G/A, TW):\n"+s.handCopy(SideA).StatLines())
	e.sendText(ctx, s.OpponentID,
		"Choose a card (your opponent's stat will be used for comparison):\n"+s.handCopy(SideB).StatLines())
}

// awaitRound collects both sides' answers for one round. The two awaits are
// independent and share one deadline starting now; expiry of either ends the
// battle with ErrRoundTimeout.
func (e *Engine) awaitRound(ctx context.Context, s *Session) (declaration, card.Card, error) {
	stepCtx, cancel := context.WithTimeout(ctx, e.roundTimeout)
	defer cancel()

	var declA declaration
	var cardB card.Card

	g, gctx := errgroup.WithContext(stepCtx)
	g.Go(func() error {
		d, err := e.awaitDeclaration(gctx, s)
		if err != nil {
			return err
		}
		declA = d
		return nil
	})
	g.Go(func() error {
		c, err := e.awaitCardChoice(gctx, s)
		if err != nil {
			return err
		}
		cardB = c
		return nil
	})

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return declaration{}, card.Card{}, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return declaration{}, card.Card{}, ErrRoundTimeout
		}
		return declaration{}, card.Card{}, err
	}
	return declA, cardB, nil
}

// awaitDeclaration keeps prompting side A until a valid (card, stat) pair
// arrives or the deadline passes. Invalid input never counts as the round's
// answer.
func (e *Engine) awaitDeclaration(ctx context.Context, s *Session) (declaration, error) {
	p := s.ChallengerID
	for {
		text, err := e.await(ctx, p)
		if err != nil {
			return declaration{}, err
		}
		d, err := parseDeclaration(text, s.handCopy(SideA))
		if err != nil {
			e.sendText(ctx, p, "Invalid input! Please enter the card name followed by the stat (e.g., 'Alexander Isak rating').")
			continue
		}
		return d, nil
	}
}

// awaitCardChoice keeps prompting side B until a card currently in their hand
// arrives or the deadline passes.
func (e *Engine) awaitCardChoice(ctx context.Context, s *Session) (card.Card, error) {
	p := s.OpponentID
	for {
		text, err := e.await(ctx, p)
		if err != nil {
			return card.Card{}, err
		}
		c, err := parseCardChoice(text, s.handCopy(SideB))
		if err != nil {
			e.sendText(ctx, p, "Invalid input! Please enter the card name (e.g., 'Bruno Guimaraes').")
			continue
		}
		return c, nil
	}
}
