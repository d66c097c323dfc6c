package board

import "github.com/daystram/tempo/position"

type Move struct {
	From, To position.Pos
	Piece    Piece

	IsTurn      Side
	IsCapture   bool
	IsCastle    CastleDirection
	IsEnPassant bool
	IsPromote   Piece
}

func (m Move) IsNull() bool {
	return m.From == m.To
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.IsPromote == o.IsPromote
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.IsCastle != CastleDirectionUnknown {
		if m.IsCastle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture {
		if m.Piece == PiecePawn {
			nt += m.From.X().NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += m.IsPromote.SymbolAlgebra(SideWhite)
	}
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt
}

// UCI is the pure coordinate form: from square, to square, and an optional
// promotion letter, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}
