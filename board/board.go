package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/tempo/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	flagNoEnPassant position.Pos = -1
)

var (
	ErrInvalidFEN     = errors.New("invalid fen")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNoMoveToRevert = errors.New("no move to revert")
)

// Board is a mailbox board: one packed side+piece cell per square, with the
// undo stack and hash history needed for in-place make/unmove.
type Board struct {
	cells [TotalCells]cell

	// meta
	enPassantPos  position.Pos
	castleRights  CastleRights
	halfMoveClock uint16
	fullMoveClock uint16
	turn          Side

	// incremental hash and histories
	hash        uint64
	hashHistory []uint64
	undoStack   []undoRecord
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, Side, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, SideUnknown, err
	}
	return b, b.turn, nil
}

// Clone returns an independent deep copy of the board, including its undo
// stack and hash history.
func (b *Board) Clone() *Board {
	bb := *b
	bb.hashHistory = append([]uint64(nil), b.hashHistory...)
	bb.undoStack = append([]undoRecord(nil), b.undoStack...)
	return &bb
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassantPos returns the en passant target square and whether one is set.
func (b *Board) EnPassantPos() (position.Pos, bool) {
	return b.enPassantPos, b.enPassantPos != flagNoEnPassant
}

// Hash returns the incrementally maintained Zobrist hash of the position.
func (b *Board) Hash() uint64 {
	return b.hash
}

// PieceAt returns the side and piece occupying pos, or SideUnknown and
// PieceUnknown for an empty square.
func (b *Board) PieceAt(pos position.Pos) (Side, Piece) {
	c := b.cells[pos]
	return c.Side(), c.Piece()
}

// State derives the game state for the side to move.
func (b *Board) State() State {
	checked := b.IsKingChecked(b.turn)
	if len(b.GenerateMoves()) == 0 {
		if checked {
			if b.turn == SideWhite {
				return StateCheckmateWhite
			}
			return StateCheckmateBlack
		}
		return StateStalemate
	}
	// checkmate takes precedence over draw rules
	if b.IsFiftyMove() {
		return StateFiftyMoveViolated
	}
	if b.IsRepetition() {
		return StateThreefoldRepetition
	}
	if checked {
		if b.turn == SideWhite {
			return StateCheckWhite
		}
		return StateCheckBlack
	}
	return StateRunning
}

// ParseMove resolves coordinate notation ("e2e4", "e7e8q") against the legal
// moves of the position. Malformed notation is rejected before the legality
// lookup.
func (b *Board) ParseMove(notation string) (Move, error) {
	if len(notation) != 4 && len(notation) != 5 {
		return Move{}, position.ErrInvalidNotation
	}
	from, err := position.NewPosFromNotation(notation[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := position.NewPosFromNotation(notation[2:4])
	if err != nil {
		return Move{}, err
	}
	promote := PieceUnknown
	if len(notation) == 5 {
		var ok bool
		promote, ok = pieceFromSymbolAlgebra(notation[4])
		if !ok {
			return Move{}, position.ErrInvalidNotation
		}
	}

	want := Move{From: from, To: to, IsPromote: promote}
	for _, mv := range b.GenerateMoves() {
		if mv.Equals(want) {
			return mv, nil
		}
	}
	return Move{}, ErrIllegalMove
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(position.NewPos(x, y))
			sym := p.SymbolFEN(s)
			if s == SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board with unicode piece symbols, rank 8 on top.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf("%d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(position.NewPos(x, y))
			sym := p.SymbolUnicode(s)
			if s == SideUnknown {
				sym = "."
			}
			_, _ = builder.WriteString(sym + " ")
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("  a b c d e f g h")
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nhalf: %4d\nfull: %4d\nhash: %016x", b.castleRights, b.halfMoveClock, b.fullMoveClock, b.hash)
}
