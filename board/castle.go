package board

import "github.com/daystram/tempo/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

type CastleRights uint8

var maskCastleRights = [4 + 1]CastleRights{
	CastleDirectionWhiteRight: 0b1000,
	CastleDirectionWhiteLeft:  0b0100,
	CastleDirectionBlackRight: 0b0010,
	CastleDirectionBlackLeft:  0b0001,
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

var (
	// posCastling holds the king and rook hops per castle direction.
	posCastling = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteLeft: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackRight: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackLeft: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}

	// posCastlingEmpty are the squares that must be vacant between king and rook.
	posCastlingEmpty = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.B1, position.C1, position.D1},
		CastleDirectionBlackRight: {position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.B8, position.C8, position.D8},
	}

	// posCastlingSafe are the squares the king occupies or transits, which must
	// not be attacked by the opponent.
	posCastlingSafe = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.E1, position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.E1, position.D1, position.C1},
		CastleDirectionBlackRight: {position.E8, position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.E8, position.D8, position.C8},
	}
)
