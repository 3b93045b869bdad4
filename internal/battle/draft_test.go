package battle

import (
	"context"
	"reflect"
	"testing"
	"time"
)

// Drafting grows the hand to five; unknown and duplicate names are reported
// and re-prompted without consuming the step.
func TestDraftRejectsUnknownAndDuplicatePicks(t *testing.T) {
	stubSampling(t)
	msgr := newRecordingMessenger()
	e, store := newTestEngine(t, fullCollections(), msgr, time.Second, time.Second)

	if _, err := e.Challenge(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("challenge: %v", err)
	}
	if err := e.Accept(context.Background(), "bob"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// Initial hand is Kane, Bruno, Saka.
	deliver(t, e, "alice", "Nobody Special")
	deliver(t, e, "alice", "Kane")
	deliver(t, e, "alice", "Rice")
	deliver(t, e, "alice", "rice")
	deliver(t, e, "alice", "Toney")

	deliver(t, e, "bob", "Rodri")
	deliver(t, e, "bob", "Son")

	waitFor(t, time.Second, func() bool {
		return msgr.gotAnnouncement("Let the battle begin")
	}, "draft phase completed")

	if !msgr.gotText("alice", "couldn't find 'Nobody Special'") {
		t.Fatalf("unknown pick must be reported")
	}
	if !msgr.gotText("alice", "already in your hand") {
		t.Fatalf("duplicate pick must be reported")
	}

	s, ok := store.Get("alice")
	if !ok {
		t.Fatalf("session should still be live")
	}
	if s.Status() != StatusInProgress {
		t.Fatalf("want in_progress after both drafts, got %s", s.Status())
	}
	want := []string{"Kane", "Bruno", "Saka", "Rice", "Toney"}
	if got := s.Snapshot().HandA; !reflect.DeepEqual(got, want) {
		t.Fatalf("battle hand = %v, want %v", got, want)
	}
	if got := s.Snapshot().HandB; len(got) != BattleHandSize {
		t.Fatalf("opponent hand = %v, want %d cards", got, BattleHandSize)
	}
}

// A slow side A must not delay side B's draft; B finishing first is fine and
// the phase completes once A catches up.
func TestDraftSidesRunIndependently(t *testing.T) {
	stubSampling(t)
	msgr := newRecordingMessenger()
	e, store := newTestEngine(t, fullCollections(), msgr, 500*time.Millisecond, time.Second)

	if _, err := e.Challenge(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("challenge: %v", err)
	}
	if err := e.Accept(context.Background(), "bob"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	deliver(t, e, "bob", "Rodri")
	deliver(t, e, "bob", "Son")

	// B is done; the session is still drafting while A is outstanding.
	s, _ := store.Get("bob")
	if got := s.Status(); got != StatusDrafting {
		t.Fatalf("want drafting while A is outstanding, got %s", got)
	}

	deliver(t, e, "alice", "Rice")
	deliver(t, e, "alice", "Toney")

	waitFor(t, time.Second, func() bool {
		return msgr.gotAnnouncement("Let the battle begin")
	}, "draft phase completed")
}
