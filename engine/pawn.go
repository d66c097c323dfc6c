package engine

import (
	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/position"
)

const (
	scorePawnDoubled   int32 = -20
	scorePawnIsolated  int32 = -15
	scorePawnBackward  int32 = -10
	scorePawnConnected int32 = 5
	scorePawnChain     int32 = 10
)

// scorePawnPassed is indexed by the number of ranks the pawn has advanced
// from its starting side.
var scorePawnPassed = [8]int32{0, 10, 20, 40, 60, 90, 120, 0}

// evaluatePawnStructure scores pawn formations for both sides, positive
// favoring White.
func evaluatePawnStructure(b *board.Board) int32 {
	return evaluatePawnStructureSide(b, board.SideWhite) - evaluatePawnStructureSide(b, board.SideBlack)
}

func evaluatePawnStructureSide(b *board.Board, s board.Side) int32 {
	var pawns []position.Pos
	var pawnFiles [board.Width]uint8
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if ps, pp := b.PieceAt(pos); ps == s && pp == board.PiecePawn {
			pawns = append(pawns, pos)
			pawnFiles[pos.X()]++
		}
	}

	var score int32
	for _, pos := range pawns {
		if pawnFiles[pos.X()] > 1 {
			score += scorePawnDoubled
		}
		if isIsolatedPawn(pos, pawnFiles) {
			score += scorePawnIsolated
		}
		if isPassedPawn(b, pos, s) {
			advance := pos.Y()
			if s == board.SideBlack {
				advance = board.Height - 1 - pos.Y()
			}
			score += scorePawnPassed[advance]
		}
		if isConnectedPawn(b, pos, s) {
			score += scorePawnConnected
		}
		if isChainedPawn(b, pos, s) {
			score += scorePawnChain
		}
		if isBackwardPawn(b, pos, s, pawnFiles) {
			score += scorePawnBackward
		}
	}
	return score
}

func isIsolatedPawn(pos position.Pos, pawnFiles [board.Width]uint8) bool {
	x := pos.X()
	if x > 0 && pawnFiles[x-1] > 0 {
		return false
	}
	if x < board.Width-1 && pawnFiles[x+1] > 0 {
		return false
	}
	return true
}

// isPassedPawn reports whether no enemy pawn blocks or can capture pos on its
// way to promotion.
func isPassedPawn(b *board.Board, pos position.Pos, s board.Side) bool {
	for x := max(pos.X()-1, 0); x <= min(pos.X()+1, board.Width-1); x++ {
		if s == board.SideWhite {
			for y := pos.Y() + 1; y < board.Height; y++ {
				if ps, pp := b.PieceAt(position.NewPos(x, y)); ps != s && pp == board.PiecePawn {
					return false
				}
			}
		} else {
			for y := position.Pos(0); y < pos.Y(); y++ {
				if ps, pp := b.PieceAt(position.NewPos(x, y)); ps != s && pp == board.PiecePawn {
					return false
				}
			}
		}
	}
	return true
}

// isConnectedPawn reports whether a friendly pawn stands beside pos on the
// same rank.
func isConnectedPawn(b *board.Board, pos position.Pos, s board.Side) bool {
	for _, x := range [2]position.Pos{pos.X() - 1, pos.X() + 1} {
		if x < 0 || board.Width <= x {
			continue
		}
		if ps, pp := b.PieceAt(position.NewPos(x, pos.Y())); ps == s && pp == board.PiecePawn {
			return true
		}
	}
	return false
}

// isChainedPawn reports whether pos is defended by a friendly pawn diagonally
// behind it.
func isChainedPawn(b *board.Board, pos position.Pos, s board.Side) bool {
	y := pos.Y() - 1
	if s == board.SideBlack {
		y = pos.Y() + 1
	}
	if y < 0 || board.Height <= y {
		return false
	}
	for _, x := range [2]position.Pos{pos.X() - 1, pos.X() + 1} {
		if x < 0 || board.Width <= x {
			continue
		}
		if ps, pp := b.PieceAt(position.NewPos(x, y)); ps == s && pp == board.PiecePawn {
			return true
		}
	}
	return false
}

// isBackwardPawn reports whether every friendly pawn on the adjacent files is
// strictly ahead of pos, leaving it without pawn support to advance behind.
func isBackwardPawn(b *board.Board, pos position.Pos, s board.Side, pawnFiles [board.Width]uint8) bool {
	hasNeighbor := false
	for _, x := range [2]position.Pos{pos.X() - 1, pos.X() + 1} {
		if x < 0 || board.Width <= x || pawnFiles[x] == 0 {
			continue
		}
		hasNeighbor = true
		for y := position.Pos(0); y < board.Height; y++ {
			ps, pp := b.PieceAt(position.NewPos(x, y))
			if ps != s || pp != board.PiecePawn {
				continue
			}
			ahead := y > pos.Y()
			if s == board.SideBlack {
				ahead = y < pos.Y()
			}
			if !ahead {
				return false
			}
		}
	}
	return hasNeighbor
}
