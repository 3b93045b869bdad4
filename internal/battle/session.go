package battle

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusDrafting   Status = "drafting"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// statusRank orders the lifecycle. Transitions may only move forward; fatal
// paths may jump straight to completed.
var statusRank = map[Status]int{
	StatusPending:    0,
	StatusDrafting:   1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

const (
	InitialHandSize = 3
	BattleHandSize  = 5
	MaxRounds       = 5
)

// Side identifies one of the two participants in a session. Side A is always
// the challenger.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Session is a live battle between two participants. All field access goes
// through the session mutex so the owning phase and snapshot readers never
// race.
type Session struct {
	ID           uuid.UUID
	ChallengerID string
	OpponentID   string

	mu           sync.Mutex
	status       Status
	handA, handB Hand
	scoreA       int
	scoreB       int
	roundsPlayed int
}

// Snapshot is a read-only view of a session safe to hand out of the engine.
type Snapshot struct {
	ID           uuid.UUID `json:"id"`
	ChallengerID string    `json:"challenger_id"`
	OpponentID   string    `json:"opponent_id"`
	Status       Status    `json:"status"`
	HandA        []string  `json:"hand_a"`
	HandB        []string  `json:"hand_b"`
	ScoreA       int       `json:"score_a"`
	ScoreB       int       `json:"score_b"`
	RoundsPlayed int       `json:"rounds_played"`
}

func newSession(challenger, opponent string) *Session {
	return &Session{
		ID:           uuid.New(),
		ChallengerID: challenger,
		OpponentID:   opponent,
		status:       StatusPending,
	}
}

// side resolves a participant identity to its side.
func (s *Session) side(participantID string) (Side, bool) {
	switch participantID {
	case s.ChallengerID:
		return SideA, true
	case s.OpponentID:
		return SideB, true
	default:
		return 0, false
	}
}

func (s *Session) participant(side Side) string {
	if side == SideA {
		return s.ChallengerID
	}
	return s.OpponentID
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// transition advances the status. Backwards or repeated transitions fail.
func (s *Session) transition(next Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if statusRank[next] <= statusRank[s.status] {
		return ErrBadTransition
	}
	s.status = next
	return nil
}

func (s *Session) setInitialHand(side Side, h Hand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if side == SideA {
		s.handA = h
	} else {
		s.handB = h
	}
}

func (s *Session) handRef(side Side) *Hand {
	if side == SideA {
		return &s.handA
	}
	return &s.handB
}

// handCopy returns a copy of the side's hand so callers can read it without
// holding the session lock.
func (s *Session) handCopy(side Side) Hand {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := *s.handRef(side)
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (s *Session) handSize(side Side) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(*s.handRef(side))
}

// addCard appends a drafted card. It fails on a duplicate name or a full hand.
func (s *Session) addCard(side Side, c card.Card) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.handRef(side)
	if len(*h) >= BattleHandSize {
		return false
	}
	return h.add(c)
}

func (s *Session) removeCard(side Side, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handRef(side).remove(name)
}

// findInHand resolves a named card against the side's current hand.
func (s *Session) findInHand(side Side, name string) (card.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handRef(side).Find(name)
}

// roundDone records a finished round. winner is nil for a tie, which credits
// no score.
func (s *Session) roundDone(winner *Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roundsPlayed++
	if winner == nil {
		return
	}
	if *winner == SideA {
		s.scoreA++
	} else {
		s.scoreB++
	}
}

func (s *Session) scores() (a, b int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreA, s.scoreB
}

func (s *Session) rounds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundsPlayed
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:           s.ID,
		ChallengerID: s.ChallengerID,
		OpponentID:   s.OpponentID,
		Status:       s.status,
		HandA:        s.handA.Names(),
		HandB:        s.handB.Names(),
		ScoreA:       s.scoreA,
		ScoreB:       s.scoreB,
		RoundsPlayed: s.roundsPlayed,
	}
}
