package board

// Side is the color of a piece or of the player to move. The zero value is
// what empty cells report.
type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Opposite returns the other color, mapping SideUnknown to itself.
func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// SymbolFEN is the side-to-move letter of the FEN active-color field.
func (s Side) SymbolFEN() string {
	switch s {
	case SideWhite:
		return "w"
	case SideBlack:
		return "b"
	default:
		return "-"
	}
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}
