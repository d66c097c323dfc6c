package engine

import (
	"errors"
	"testing"

	"github.com/daystram/tempo/board"
)

func discardLogger(...any) {}

func TestFindBestMoveMateInOne(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fen  string
		want string
	}{
		{
			name: "fools mate",
			fen:  "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2",
			want: "d8h4",
		},
		{
			name: "back rank",
			fen:  "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1",
			want: "a1a8",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, _, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			e := NewEngine(&EngineConfig{Logger: discardLogger})
			result, err := e.FindBestMove(b, 2)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := result.Move.UCI(); got != tt.want {
				t.Errorf("unexpected best move: got=%s want=%s", got, tt.want)
			}

			b.Apply(result.Move)
			if got := b.State(); !got.IsCheckmate() {
				t.Errorf("expected checkmate after best move: got=%s", got)
			}
		})
	}
}

func TestFindBestMoveHangingQueen(t *testing.T) {
	t.Parallel()

	b, _, err := board.NewBoard(board.WithFEN("k7/8/8/3q4/4P3/8/8/K7 w - - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	e := NewEngine(&EngineConfig{Logger: discardLogger})
	result, err := e.FindBestMove(b, 1)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := result.Move.UCI(); got != "e4d5" {
		t.Errorf("unexpected best move: got=%s want=e4d5", got)
	}
	if result.Score <= 0 {
		t.Errorf("expected winning evaluation for White: got=%d", result.Score)
	}
}

func TestFindBestMoveNoLegalMoves(t *testing.T) {
	t.Parallel()

	// side to move is already checkmated
	b, _, err := board.NewBoard(board.WithFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	e := NewEngine(&EngineConfig{Logger: discardLogger})
	if _, err := e.FindBestMove(b, 3); !errors.Is(err, ErrNoLegalMoves) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoLegalMoves)
	}
}

func TestFindBestMoveRootWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fen  string
	}{
		{
			name: "italian middlegame",
			fen:  "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		},
		{
			name: "kiwipete black to move",
			fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, _, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			e := NewEngine(&EngineConfig{Logger: discardLogger})
			result, err := e.FindBestMove(b, 3)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			// searching every root move with the full window must agree with
			// the narrowed root and never visit fewer nodes
			ref := NewEngine(&EngineConfig{Logger: discardLogger})
			us := b.Turn()
			want := -ScoreInfinite
			if us == board.SideBlack {
				want = ScoreInfinite
			}
			for _, mv := range b.GenerateMoves() {
				b.Apply(mv)
				score := ref.minimax(b, 2, -ScoreInfinite, ScoreInfinite, us == board.SideBlack)
				_ = b.Revert()
				if us == board.SideWhite {
					want = max(want, score)
				} else {
					want = min(want, score)
				}
			}
			if result.Score != want {
				t.Errorf("unexpected root score: got=%d want=%d", result.Score, want)
			}
			if result.Nodes > ref.nodes {
				t.Errorf("narrowed root searched more nodes than the full window: got=%d full=%d", result.Nodes, ref.nodes)
			}
		})
	}
}

func TestFindBestMoveBoardUnchanged(t *testing.T) {
	t.Parallel()

	b, _, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	wantFEN, wantHash := b.FEN(), b.Hash()

	e := NewEngine(&EngineConfig{Logger: discardLogger})
	if _, err := e.FindBestMove(b, 3); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if gotFEN := b.FEN(); gotFEN != wantFEN {
		t.Errorf("search mutated the board: got=%s want=%s", gotFEN, wantFEN)
	}
	if gotHash := b.Hash(); gotHash != wantHash {
		t.Errorf("search mutated the hash: got=%016x want=%016x", gotHash, wantHash)
	}
}
