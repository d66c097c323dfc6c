package board

import "testing"

// TestHashIncremental verifies the incrementally maintained hash against a
// full recomputation after every ply of lines exercising captures, castling,
// promotions, and en passant.
func TestHashIncremental(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fen       string
		notations []string
	}{
		{
			name:      "opening line",
			fen:       DefaultStartingPositionFEN,
			notations: []string{"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6", "b1c3", "a7a6"},
		},
		{
			name:      "castling both sides",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			notations: []string{"e1g1", "e8c8", "f1f2", "d8d2"},
		},
		{
			name:      "en passant",
			fen:       "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			notations: []string{"e5f6", "g7f6"},
		},
		{
			name:      "promotion",
			fen:       "8/5P1k/8/8/8/8/8/7K w - - 0 1",
			notations: []string{"f7f8q", "h7g6", "f8a8", "g6g5"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, _, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, nt := range tt.notations {
				mv, err := b.ParseMove(nt)
				if err != nil {
					t.Fatalf("unexpected error parsing %s: %v", nt, err)
				}
				b.Apply(mv)
				if got, want := b.Hash(), b.ComputeHash(); got != want {
					t.Fatalf("hash diverged after %s: got=%016x want=%016x", nt, got, want)
				}
			}
			for range tt.notations {
				if err := b.Revert(); err != nil {
					t.Fatal("unexpected error:", err)
				}
				if got, want := b.Hash(), b.ComputeHash(); got != want {
					t.Fatalf("hash diverged after revert: got=%016x want=%016x", got, want)
				}
			}
		})
	}
}

// TestHashTransposition verifies that move orders reaching the same position
// hash identically, and that en passant rights distinguish otherwise equal
// placements.
func TestHashTransposition(t *testing.T) {
	t.Parallel()

	b1, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	applyNotation(t, b1, "g1f3", "g8f6", "b1c3", "b8c6")

	b2, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	applyNotation(t, b2, "b1c3", "b8c6", "g1f3", "g8f6")

	if b1.Hash() != b2.Hash() {
		t.Errorf("transpositions hash differently: %016x != %016x", b1.Hash(), b2.Hash())
	}

	withEP, _, err := NewBoard(WithFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	withoutEP, _, err := NewBoard(WithFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if withEP.Hash() == withoutEP.Hash() {
		t.Error("en passant right not reflected in hash")
	}
}
