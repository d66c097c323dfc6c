package board

import (
	"errors"
	"testing"

	"github.com/daystram/tempo/position"
)

func applyNotation(t *testing.T, b *Board, notations ...string) {
	t.Helper()
	for _, nt := range notations {
		mv, err := b.ParseMove(nt)
		if err != nil {
			t.Fatalf("unexpected error parsing %s: %v", nt, err)
		}
		b.Apply(mv)
	}
}

func TestBoardApplyRevert(t *testing.T) {
	t.Parallel()

	b, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	wantFEN, wantHash := b.FEN(), b.Hash()

	applyNotation(t, b, "e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4")
	for i := 0; i < 7; i++ {
		if err := b.Revert(); err != nil {
			t.Fatal("unexpected error:", err)
		}
	}

	if gotFEN := b.FEN(); gotFEN != wantFEN {
		t.Errorf("unexpected FEN after revert: got=%s want=%s", gotFEN, wantFEN)
	}
	if gotHash := b.Hash(); gotHash != wantHash {
		t.Errorf("unexpected hash after revert: got=%016x want=%016x", gotHash, wantHash)
	}
}

func TestBoardRevertEmpty(t *testing.T) {
	t.Parallel()

	b, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	wantFEN := b.FEN()

	if err := b.Revert(); !errors.Is(err, ErrNoMoveToRevert) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoMoveToRevert)
	}
	if gotFEN := b.FEN(); gotFEN != wantFEN {
		t.Errorf("board mutated by failed revert: got=%s want=%s", gotFEN, wantFEN)
	}
}

func TestBoardFoolsMate(t *testing.T) {
	t.Parallel()

	b, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	applyNotation(t, b, "f2f3", "e7e5", "g2g4", "d8h4")

	if got := b.State(); got != StateCheckmateWhite {
		t.Errorf("unexpected state: got=%s want=%s", got, StateCheckmateWhite)
	}
	if got := len(b.GenerateMoves()); got != 0 {
		t.Errorf("unexpected legal moves in checkmate: got=%d", got)
	}
}

func TestBoardEnPassant(t *testing.T) {
	t.Parallel()

	b, _, err := NewBoard(WithFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	mv, err := b.ParseMove("e5f6")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !mv.IsEnPassant || !mv.IsCapture {
		t.Errorf("expected en passant capture: got=%+v", mv)
	}
	b.Apply(mv)

	// the captured pawn sits on f5, not on the landing square
	if s, p := b.PieceAt(position.F5); s != SideUnknown || p != PieceUnknown {
		t.Errorf("expected f5 empty: got side=%s piece=%s", s, p)
	}
	if s, p := b.PieceAt(position.F6); s != SideWhite || p != PiecePawn {
		t.Errorf("expected white pawn on f6: got side=%s piece=%s", s, p)
	}

	if err := b.Revert(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if s, p := b.PieceAt(position.F5); s != SideBlack || p != PiecePawn {
		t.Errorf("expected black pawn restored on f5: got side=%s piece=%s", s, p)
	}
}

func TestBoardCastle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fen      string
		notation string
		wantErr  bool
	}{
		{
			name:     "white short",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			notation: "e1g1",
		},
		{
			name:     "white long",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			notation: "e1c1",
		},
		{
			name:     "black short",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			notation: "e8g8",
		},
		{
			name:     "rights revoked",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1",
			notation: "e1g1",
			wantErr:  true,
		},
		{
			name:     "transit square attacked",
			fen:      "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1",
			notation: "e1g1",
			wantErr:  true,
		},
		{
			name:     "path blocked",
			fen:      "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1",
			notation: "e1g1",
			wantErr:  true,
		},
		{
			name:     "king in check",
			fen:      "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1",
			notation: "e1g1",
			wantErr:  true,
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
			mv, err := b.ParseMove(tt.notation)
			if tt.wantErr {
				if !errors.Is(err, ErrIllegalMove) {
					t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalMove)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if mv.IsCastle == CastleDirectionUnknown {
				t.Fatalf("expected castle move: got=%+v", mv)
			}
			b.Apply(mv)

			// king and rook hop atomically
			kingTo := posCastling[mv.IsCastle][PieceKing][1]
			rookTo := posCastling[mv.IsCastle][PieceRook][1]
			if _, p := b.PieceAt(kingTo); p != PieceKing {
				t.Errorf("expected king on %s: got=%s", kingTo.Notation(), p)
			}
			if _, p := b.PieceAt(rookTo); p != PieceRook {
				t.Errorf("expected rook on %s: got=%s", rookTo.Notation(), p)
			}
			if b.CastleRights().IsSideAllowed(mv.IsTurn) {
				t.Error("expected castle rights revoked after castling")
			}
		})
	}
}

func TestBoardPromotion(t *testing.T) {
	t.Parallel()

	b, _, err := NewBoard(WithFEN("8/5P1k/8/8/8/8/8/7K w - - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	promos := 0
	for _, mv := range b.GenerateMoves() {
		if mv.From == position.F7 && mv.To == position.F8 {
			if mv.IsPromote == PieceUnknown {
				t.Errorf("expected promotion move: got=%+v", mv)
			}
			promos++
		}
	}
	if promos != len(PawnPromoteCandidates) {
		t.Errorf("unexpected number of promotions: got=%d want=%d", promos, len(PawnPromoteCandidates))
	}

	mv, err := b.ParseMove("f7f8q")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	b.Apply(mv)
	if s, p := b.PieceAt(position.F8); s != SideWhite || p != PieceQueen {
		t.Errorf("expected white queen on f8: got side=%s piece=%s", s, p)
	}

	if err := b.Revert(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if s, p := b.PieceAt(position.F7); s != SideWhite || p != PiecePawn {
		t.Errorf("expected white pawn restored on f7: got side=%s piece=%s", s, p)
	}
}

func TestBoardParseMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		notation string
		wantErr  error
	}{
		{notation: "e2e4", wantErr: nil},
		{notation: "b1c3", wantErr: nil},
		{notation: "e2", wantErr: position.ErrInvalidNotation},
		{notation: "e2e4x9", wantErr: position.ErrInvalidNotation},
		{notation: "z9e4", wantErr: position.ErrInvalidNotation},
		{notation: "e2e4z", wantErr: position.ErrInvalidNotation},
		{notation: "e2e5", wantErr: ErrIllegalMove},
		{notation: "e7e5", wantErr: ErrIllegalMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.notation, func(t *testing.T) {
			t.Parallel()

			b, _, err := NewBoard()
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			_, err = b.ParseMove(tt.notation)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestBoardHalfMoveClock(t *testing.T) {
	t.Parallel()

	b, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	applyNotation(t, b, "g1f3", "b8c6")
	if got := b.HalfMoveClock(); got != 2 {
		t.Errorf("unexpected half move clock: got=%d want=2", got)
	}

	// pawn moves reset the clock
	applyNotation(t, b, "e2e4")
	if got := b.HalfMoveClock(); got != 0 {
		t.Errorf("unexpected half move clock: got=%d want=0", got)
	}
}
