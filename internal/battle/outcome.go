package battle

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Outcome is the finalized result of a battle.
type Outcome struct {
	Winner string // participant identity; empty on a draw
	Draw   bool
	ScoreA int
	ScoreB int
}

// finalize computes the outcome from the session's own score fields, marks
// the session completed, and removes both index entries from the store.
func (e *Engine) finalize(ctx context.Context, s *Session) Outcome {
	scoreA, scoreB := s.scores()
	out := Outcome{ScoreA: scoreA, ScoreB: scoreB}
	switch {
	case scoreA > scoreB:
		out.Winner = s.ChallengerID
	case scoreB > scoreA:
		out.Winner = s.OpponentID
	default:
		out.Draw = true
	}

	_ = s.transition(StatusCompleted)
	e.store.Remove(s)

	if out.Draw {
		e.announce(ctx, fmt.Sprintf("The battle ended in a draw! Final score %d-%d.", scoreA, scoreB))
	} else {
		e.announce(ctx, fmt.Sprintf("The final winner is: %s! Final score %d-%d.", out.Winner, scoreA, scoreB))
	}

	e.log.Info("battle finalized",
		zap.String("session_id", s.ID.String()),
		zap.String("winner", out.Winner),
		zap.Bool("draw", out.Draw),
		zap.Int("score_a", scoreA),
		zap.Int("score_b", scoreB),
		zap.Int("rounds", s.rounds()),
	)
	return out
}
