package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/tempo/position"
)

// UnmarshalFEN loads a full 6-field FEN record into b, replacing its entire
// state. The undo stack and hash history start empty and the hash is computed
// from scratch.
func UnmarshalFEN(fen string, b *Board) error {
	segments := strings.Split(strings.TrimSpace(fen), " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	*b = Board{enPassantPos: flagNoEnPassant}

	// segment 1: piece placement, rank 8 down to rank 1
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: incorrect number of rows", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		row := rows[Height-1-y]
		x := position.Pos(0)
		for i := 0; i < len(row); i++ {
			sym := row[i]
			if '1' <= sym && sym <= '8' {
				x += position.Pos(sym - '0')
				continue
			}
			if x >= Width {
				return fmt.Errorf("%w: row %d overflows", ErrInvalidFEN, y+1)
			}
			s := SideWhite
			if 'a' <= sym && sym <= 'z' {
				s = SideBlack
				sym -= 0x20
			}
			var p Piece
			switch sym {
			case 'P':
				p = PiecePawn
			case 'B':
				p = PieceBishop
			case 'N':
				p = PieceKnight
			case 'R':
				p = PieceRook
			case 'Q':
				p = PieceQueen
			case 'K':
				p = PieceKing
			default:
				return fmt.Errorf("%w: unknown symbol %q", ErrInvalidFEN, row[i])
			}
			if p == PiecePawn && (y == position.Rank1 || y == position.Rank8) {
				return fmt.Errorf("%w: pawn on rank %d", ErrInvalidFEN, y+1)
			}
			b.cells[position.NewPos(x, y)] = newCell(s, p)
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: row %d is incomplete", ErrInvalidFEN, y+1)
		}
	}
	if _, ok := b.findKing(SideWhite); !ok {
		return fmt.Errorf("%w: missing white king", ErrInvalidFEN)
	}
	if _, ok := b.findKing(SideBlack); !ok {
		return fmt.Errorf("%w: missing black king", ErrInvalidFEN)
	}

	// segment 2: side to move
	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn color", ErrInvalidFEN)
	}

	// segment 3: castling rights
	if segments[2] != "-" {
		for i := 0; i < len(segments[2]); i++ {
			switch segments[2][i] {
			case 'K':
				b.castleRights.Set(CastleDirectionWhiteRight, true)
			case 'Q':
				b.castleRights.Set(CastleDirectionWhiteLeft, true)
			case 'k':
				b.castleRights.Set(CastleDirectionBlackRight, true)
			case 'q':
				b.castleRights.Set(CastleDirectionBlackLeft, true)
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
		}
	}

	// segment 4: en passant target square
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid en passant square: %v", ErrInvalidFEN, err)
		}
		b.enPassantPos = pos
	}

	// segments 5 and 6: clocks
	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock: %v", ErrInvalidFEN, err)
	}
	b.halfMoveClock = uint16(halfMoveClock)
	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock: %v", ErrInvalidFEN, err)
	}
	if fullMoveClock == 0 {
		return fmt.Errorf("%w: full move clock starts at 1", ErrInvalidFEN)
	}
	b.fullMoveClock = uint16(fullMoveClock)

	b.hash = b.ComputeHash()
	return nil
}

// FEN renders the position as a full 6-field FEN record.
func (b *Board) FEN() string {
	return MarshalFEN(b)
}

// MarshalFEN renders the full 6-field FEN record of the position.
func MarshalFEN(b *Board) string {
	builder := strings.Builder{}

	for y := position.Pos(Height) - 1; y >= 0; y-- {
		empty := 0
		for x := position.Pos(0); x < Width; x++ {
			c := b.cells[position.NewPos(x, y)]
			if c.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				_, _ = builder.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			_, _ = builder.WriteString(c.Piece().SymbolFEN(c.Side()))
		}
		if empty > 0 {
			_, _ = builder.WriteString(strconv.Itoa(empty))
		}
		if y > 0 {
			_, _ = builder.WriteString("/")
		}
	}

	_, _ = builder.WriteString(" " + b.turn.SymbolFEN() + " ")

	rights := ""
	if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
		rights += "K"
	}
	if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
		rights += "Q"
	}
	if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
		rights += "k"
	}
	if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	_, _ = builder.WriteString(rights)

	if b.enPassantPos != flagNoEnPassant {
		_, _ = builder.WriteString(" " + b.enPassantPos.Notation())
	} else {
		_, _ = builder.WriteString(" -")
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))
	return builder.String()
}
