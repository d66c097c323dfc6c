package engine

import (
	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/position"
)

// Mobility bonus curves indexed by the number of reachable squares. The low
// end punishes trapped pieces harder than the high end rewards open ones.
var (
	scoreMobilityKnight = [9]int32{-15, -5, 0, 5, 10, 15, 20, 22, 24}
	scoreMobilityBishop = [14]int32{-20, -10, 0, 5, 10, 15, 18, 21, 24, 26, 28, 30, 32, 34}
	scoreMobilityRook   = [15]int32{-15, -8, 0, 3, 6, 9, 12, 14, 16, 18, 20, 22, 24, 26, 28}
	scoreMobilityQueen  = [28]int32{
		-10, -5, 0, 2, 4, 6, 8, 10, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 22, 23, 23, 24, 24, 25, 25, 26, 26,
	}
)

// evaluateMobility scores how many squares each minor and major piece can
// reach, ignoring pins and whose turn it is.
func evaluateMobility(b *board.Board) int32 {
	var score int32
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		s, p := b.PieceAt(pos)
		var bonus int32
		switch p {
		case board.PieceKnight:
			bonus = scoreMobilityKnight[min(knightMobility(b, pos, s), 8)]
		case board.PieceBishop:
			bonus = scoreMobilityBishop[min(slidingMobility(b, pos, s, board.DirectionsDiagonal), 13)]
		case board.PieceRook:
			bonus = scoreMobilityRook[min(slidingMobility(b, pos, s, board.DirectionsLateral), 14)]
		case board.PieceQueen:
			bonus = scoreMobilityQueen[min(slidingMobility(b, pos, s, board.DirectionsAll), 27)]
		default:
			continue
		}
		if s == board.SideWhite {
			score += bonus
		} else {
			score -= bonus
		}
	}
	return score
}

func knightMobility(b *board.Board, pos position.Pos, s board.Side) int {
	count := 0
	for _, to := range board.KnightAttacks(pos) {
		if ts, _ := b.PieceAt(to); ts != s {
			count++
		}
	}
	return count
}

func slidingMobility(b *board.Board, pos position.Pos, s board.Side, dirs []board.Direction) int {
	count := 0
	for _, dir := range dirs {
		for _, to := range board.Ray(pos, dir) {
			ts, tp := b.PieceAt(to)
			if tp == board.PieceUnknown {
				count++
				continue
			}
			if ts != s {
				count++
			}
			break
		}
	}
	return count
}
