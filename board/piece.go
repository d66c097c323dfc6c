package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// pieceFromSymbolAlgebra resolves a promotion letter (Q/R/B/N, either case).
func pieceFromSymbolAlgebra(sym byte) (Piece, bool) {
	switch sym {
	case 'Q', 'q':
		return PieceQueen, true
	case 'R', 'r':
		return PieceRook, true
	case 'B', 'b':
		return PieceBishop, true
	case 'N', 'n':
		return PieceKnight, true
	default:
		return PieceUnknown, false
	}
}

// cell packs the side in the high nibble and piece type in the low nibble.
// The zero value is an empty square.
type cell uint8

func newCell(s Side, p Piece) cell {
	return cell(uint8(s)<<4 | uint8(p))
}

func (c cell) Side() Side {
	return Side(c >> 4)
}

func (c cell) Piece() Piece {
	return Piece(c & 0x0F)
}

func (c cell) IsEmpty() bool {
	return c == 0
}
