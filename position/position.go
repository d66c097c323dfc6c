package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the number of files and ranks on the board.
	MaxComponentScalar Pos = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in little-endian rank-file order: A1 is 0, H8 is 63.
type Pos int8

func NewPos(x, y Pos) Pos {
	return MaxComponentScalar*y + x
}

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return 0, ErrInvalidNotation
	}
	x, err := notationToX(n[0])
	if err != nil {
		return 0, err
	}
	y, err := notationToY(n[1])
	if err != nil {
		return 0, err
	}
	return NewPos(x, y), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

func (p Pos) IsValid() bool {
	return 0 <= p && p < MaxComponentScalar*MaxComponentScalar
}

// X is the file component, 0 for the a-file through 7 for the h-file.
func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

// Y is the rank component, 0 for rank 1 through 7 for rank 8.
func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

func notationToX(x byte) (Pos, error) {
	pX := Pos(x - 'a')
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToY(y byte) (Pos, error) {
	pY := Pos(y-'0') - 1
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar < p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar < p {
		return ""
	}
	return string(rune('0' + p + 1))
}
