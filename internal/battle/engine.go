package battle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kundankarn/football-battle-bot/internal/card"
	"github.com/kundankarn/football-battle-bot/internal/cardrepo"
)

// Engine drives battle sessions from challenge to outcome. One goroutine per
// accepted session; within a phase the two sides are awaited independently so
// neither side's timeout clock waits on the other.
type Engine struct {
	ctx   context.Context
	store *Store
	repo  cardrepo.Repository
	alloc *Allocator
	msgr  Messenger
	log   *zap.Logger

	draftTimeout time.Duration
	roundTimeout time.Duration

	mu      sync.Mutex
	waiters map[string]chan string
}

// NewEngine wires the engine. The two timeouts bound every awaited draft and
// round response respectively.
func NewEngine(ctx context.Context, store *Store, repo cardrepo.Repository, msgr Messenger, log *zap.Logger, draftTimeout, roundTimeout time.Duration) *Engine {
	return &Engine{
		ctx:          ctx,
		store:        store,
		repo:         repo,
		alloc:        NewAllocator(repo),
		msgr:         msgr,
		log:          log,
		draftTimeout: draftTimeout,
		roundTimeout: roundTimeout,
		waiters:      make(map[string]chan string),
	}
}

// Challenge creates a pending session between the two participants. Both
// collections are validated and both initial hands drawn before anything is
// committed to the store.
func (e *Engine) Challenge(ctx context.Context, challenger, opponent string) (*Session, error) {
	handA, handB, err := e.alloc.AllocateBoth(ctx, challenger, opponent)
	if err != nil {
		return nil, err
	}

	s, err := e.store.Create(challenger, opponent)
	if err != nil {
		return nil, err
	}
	s.setInitialHand(SideA, handA)
	s.setInitialHand(SideB, handB)

	e.announce(ctx, fmt.Sprintf("%s challenged %s to a battle! Send accept to join.", challenger, opponent))
	e.sendText(ctx, challenger, "Your selected cards: "+strings.Join(handA.Names(), ", "))
	e.sendText(ctx, opponent, "Your selected cards: "+strings.Join(handB.Names(), ", "))

	e.log.Info("battle challenged",
		zap.String("session_id", s.ID.String()),
		zap.String("challenger", challenger),
		zap.String("opponent", opponent),
	)
	return s, nil
}

// Accept moves a pending session into drafting. Only the challenged
// participant may accept; the session then runs on its own goroutine.
func (e *Engine) Accept(ctx context.Context, participantID string) error {
	s, ok := e.store.Get(participantID)
	if !ok || s.OpponentID != participantID || s.Status() != StatusPending {
		return ErrNoPendingBattle
	}
	if err := s.transition(StatusDrafting); err != nil {
		return ErrNoPendingBattle
	}

	e.announce(ctx, fmt.Sprintf("Battle accepted between %s and %s!", s.ChallengerID, s.OpponentID))
	go e.run(s)
	return nil
}

// Deliver routes a free-text message from a participant to its outstanding
// awaited step, if any. Returns false when nothing was awaiting it.
func (e *Engine) Deliver(participantID, text string) bool {
	e.mu.Lock()
	ch := e.waiters[participantID]
	if ch != nil {
		delete(e.waiters, participantID)
	}
	e.mu.Unlock()
	if ch == nil {
		return false
	}
	ch <- text
	return true
}

// ShowCard renders a card looked up across all known cards back to the
// requester. A miss is reported to the requester and returned as
// ErrUnknownCard; session state is unaffected.
func (e *Engine) ShowCard(ctx context.Context, requesterID, name string) error {
	c, err := e.repo.FindCardByName(ctx, name)
	if errors.Is(err, cardrepo.ErrNotFound) {
		e.sendText(ctx, requesterID, fmt.Sprintf("Sorry, I couldn't find any information for the card '%s'.", name))
		return ErrUnknownCard
	}
	if err != nil {
		return err
	}
	return e.msgr.SendCard(ctx, requesterID, c)
}

// run drives an accepted session through drafting, rounds, and finalization.
func (e *Engine) run(s *Session) {
	ctx := e.ctx

	for _, side := range []Side{SideA, SideB} {
		p := s.participant(side)
		for _, c := range s.handCopy(side) {
			e.sendCard(ctx, p, c)
		}
	}

	if err := e.runDraft(ctx, s); err != nil {
		e.abort(ctx, s, err)
		return
	}
	if err := s.transition(StatusInProgress); err != nil {
		e.abort(ctx, s, err)
		return
	}
	e.announce(ctx, "Both players have selected their cards. Let the battle begin!")

	if err := e.runRounds(ctx, s); err != nil {
		e.abort(ctx, s, err)
		return
	}

	e.finalize(ctx, s)
}

// abort force-completes a session on a fatal error: both participants are
// notified and the session always leaves the store.
func (e *Engine) abort(ctx context.Context, s *Session, cause error) {
	_ = s.transition(StatusCompleted)
	e.store.Remove(s)

	var msg string
	switch {
	case errors.Is(cause, ErrDraftTimeout):
		msg = "A player took too long to select additional cards. The battle is cancelled."
	case errors.Is(cause, ErrRoundTimeout):
		msg = "A player took too long to select a card. The battle is cancelled."
	default:
		msg = "The battle was cancelled."
	}
	e.sendText(ctx, s.ChallengerID, msg)
	e.sendText(ctx, s.OpponentID, msg)
	e.announce(ctx, msg)

	e.log.Warn("battle aborted",
		zap.String("session_id", s.ID.String()),
		zap.Error(cause),
	)
}

// await blocks for the next message from one participant, bounded by ctx.
func (e *Engine) await(ctx context.Context, participantID string) (string, error) {
	ch := make(chan string, 1)
	e.mu.Lock()
	e.waiters[participantID] = ch
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		if e.waiters[participantID] == ch {
			delete(e.waiters, participantID)
		}
		e.mu.Unlock()
	}()

	select {
	case text := <-ch:
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ownedCard resolves a name against the participant's own collection.
func (e *Engine) ownedCard(ctx context.Context, participantID, name string) (card.Card, bool) {
	owned, err := e.repo.OwnedCards(ctx, participantID)
	if err != nil {
		e.log.Warn("owned cards lookup failed", zap.String("participant", participantID), zap.Error(err))
		return card.Card{}, false
	}
	for _, c := range owned {
		if c.Is(name) {
			return c, true
		}
	}
	return card.Card{}, false
}

func (e *Engine) sendText(ctx context.Context, participantID, text string) {
	if err := e.msgr.SendText(ctx, participantID, text); err != nil {
		e.log.Warn("send failed", zap.String("participant", participantID), zap.Error(err))
	}
}

func (e *Engine) sendCard(ctx context.Context, participantID string, c card.Card) {
	if err := e.msgr.SendCard(ctx, participantID, c); err != nil {
		e.log.Warn("card send failed", zap.String("participant", participantID), zap.Error(err))
	}
}

func (e *Engine) announce(ctx context.Context, text string) {
	if err := e.msgr.Announce(ctx, text); err != nil {
		e.log.Warn("announce failed", zap.Error(err))
	}
}
