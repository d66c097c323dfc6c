package board

import "github.com/daystram/tempo/position"

// Direction is one of the 8 compass directions a sliding piece can travel.
type Direction uint8

const (
	DirectionN Direction = iota
	DirectionNE
	DirectionE
	DirectionSE
	DirectionS
	DirectionSW
	DirectionW
	DirectionNW
)

var (
	directionDelta = [8][2]position.Pos{
		DirectionN:  {0, 1},
		DirectionNE: {1, 1},
		DirectionE:  {1, 0},
		DirectionSE: {1, -1},
		DirectionS:  {0, -1},
		DirectionSW: {-1, -1},
		DirectionW:  {-1, 0},
		DirectionNW: {-1, 1},
	}

	DirectionsLateral  = []Direction{DirectionN, DirectionE, DirectionS, DirectionW}
	DirectionsDiagonal = []Direction{DirectionNE, DirectionSE, DirectionSW, DirectionNW}
	DirectionsAll      = []Direction{
		DirectionN, DirectionNE, DirectionE, DirectionSE,
		DirectionS, DirectionSW, DirectionW, DirectionNW,
	}

	offsetsKnight = [8][2]position.Pos{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}

	attackKnight [TotalCells][]position.Pos
	attackKing   [TotalCells][]position.Pos
	attackRay    [TotalCells][8][]position.Pos

	distanceChebyshev [TotalCells][TotalCells]uint8
	distanceManhattan [TotalCells][TotalCells]uint8
)

func init() {
	initAttackTables()
	initDistanceTables()
}

func initAttackTables() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		x, y := pos.X(), pos.Y()

		for _, d := range offsetsKnight {
			if to, ok := offsetPos(x+d[0], y+d[1]); ok {
				attackKnight[pos] = append(attackKnight[pos], to)
			}
		}

		for _, dir := range DirectionsAll {
			d := directionDelta[dir]
			if to, ok := offsetPos(x+d[0], y+d[1]); ok {
				attackKing[pos] = append(attackKing[pos], to)
			}

			tx, ty := x+d[0], y+d[1]
			for {
				to, ok := offsetPos(tx, ty)
				if !ok {
					break
				}
				attackRay[pos][dir] = append(attackRay[pos][dir], to)
				tx += d[0]
				ty += d[1]
			}
		}
	}
}

func initDistanceTables() {
	for a := position.Pos(0); a < TotalCells; a++ {
		for b := position.Pos(0); b < TotalCells; b++ {
			dx, dy := absDelta(a.X(), b.X()), absDelta(a.Y(), b.Y())
			distanceChebyshev[a][b] = uint8(maxPos(dx, dy))
			distanceManhattan[a][b] = uint8(dx + dy)
		}
	}
}

func offsetPos(x, y position.Pos) (position.Pos, bool) {
	if x < 0 || Width <= x || y < 0 || Height <= y {
		return 0, false
	}
	return position.NewPos(x, y), true
}

func absDelta(a, b position.Pos) position.Pos {
	if a > b {
		return a - b
	}
	return b - a
}

func maxPos(a, b position.Pos) position.Pos {
	if a > b {
		return a
	}
	return b
}

// KnightAttacks returns the squares a knight on pos reaches.
// The returned slice is shared and must not be mutated.
func KnightAttacks(pos position.Pos) []position.Pos {
	return attackKnight[pos]
}

// KingAttacks returns the squares adjacent to pos.
// The returned slice is shared and must not be mutated.
func KingAttacks(pos position.Pos) []position.Pos {
	return attackKing[pos]
}

// Ray returns the squares outward from pos in the given direction, ordered
// nearest first, up to the board edge. The returned slice is shared and must
// not be mutated.
func Ray(pos position.Pos, dir Direction) []position.Pos {
	return attackRay[pos][dir]
}

// Distance returns the Chebyshev distance between two squares.
func Distance(a, b position.Pos) uint8 {
	return distanceChebyshev[a][b]
}

// ManhattanDistance is the taxicab distance between two squares, the number
// of lateral king steps separating them.
func ManhattanDistance(a, b position.Pos) uint8 {
	return distanceManhattan[a][b]
}

