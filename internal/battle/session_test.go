package battle

import "testing"

func TestTransitionsAreForwardOnly(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{name: "pending to drafting", from: StatusPending, to: StatusDrafting},
		{name: "drafting to in progress", from: StatusDrafting, to: StatusInProgress},
		{name: "in progress to completed", from: StatusInProgress, to: StatusCompleted},
		{name: "drafting to completed on fatal error", from: StatusDrafting, to: StatusCompleted},
		{name: "no repeat", from: StatusDrafting, to: StatusDrafting, wantErr: true},
		{name: "no reverse", from: StatusInProgress, to: StatusDrafting, wantErr: true},
		{name: "completed is terminal", from: StatusCompleted, to: StatusPending, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession("alice", "bob")
			s.status = tc.from
			err := s.transition(tc.to)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestAddCardRejectsDuplicatesAndOverfill(t *testing.T) {
	s := newSession("alice", "bob")
	s.setInitialHand(SideA, Hand{mk("Kane", 90), mk("Bruno", 85), mk("Saka", 80)})

	if !s.addCard(SideA, mk("Rice", 75)) {
		t.Fatalf("fourth card should be accepted")
	}
	if s.addCard(SideA, mk("kane", 90)) {
		t.Fatalf("duplicate name must be rejected, ignoring case")
	}
	if !s.addCard(SideA, mk("Toney", 70)) {
		t.Fatalf("fifth card should be accepted")
	}
	if s.addCard(SideA, mk("Isak", 85)) {
		t.Fatalf("hand must never exceed %d cards", BattleHandSize)
	}
	if s.handSize(SideA) != BattleHandSize {
		t.Fatalf("want %d cards, got %d", BattleHandSize, s.handSize(SideA))
	}
}

func TestRoundDoneTieCreditsNoScore(t *testing.T) {
	s := newSession("alice", "bob")

	winner := SideA
	s.roundDone(&winner)
	s.roundDone(nil)
	winner = SideB
	s.roundDone(&winner)

	a, b := s.scores()
	if a != 1 || b != 1 || s.rounds() != 3 {
		t.Fatalf("want scores 1-1 over 3 rounds, got %d-%d over %d", a, b, s.rounds())
	}
}

func TestSideResolution(t *testing.T) {
	s := newSession("alice", "bob")
	if side, ok := s.side("alice"); !ok || side != SideA {
		t.Fatalf("challenger must be side A")
	}
	if side, ok := s.side("bob"); !ok || side != SideB {
		t.Fatalf("opponent must be side B")
	}
	if _, ok := s.side("carol"); ok {
		t.Fatalf("stranger must not resolve")
	}
}
