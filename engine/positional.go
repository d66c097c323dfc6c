package engine

import (
	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/position"
)

const (
	scoreBishopPair      int32 = 30
	scoreRookOpenFile    int32 = 25
	scoreRookSemiOpen    int32 = 15
	scoreRookSeventhRank int32 = 20
	scoreKnightOutpost   int32 = 20
)

// evaluatePositional scores the remaining piece-specific terms: the bishop
// pair, rook activity, and knight outposts. Positive favors White.
func evaluatePositional(b *board.Board) int32 {
	return evaluatePositionalSide(b, board.SideWhite) - evaluatePositionalSide(b, board.SideBlack)
}

func evaluatePositionalSide(b *board.Board, s board.Side) int32 {
	var score int32
	bishops := 0
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		ps, pp := b.PieceAt(pos)
		if ps != s {
			continue
		}
		switch pp {
		case board.PieceBishop:
			bishops++
		case board.PieceRook:
			score += rookActivity(b, pos, s)
		case board.PieceKnight:
			if isKnightOutpost(b, pos, s) {
				score += scoreKnightOutpost
			}
		}
	}
	if bishops >= 2 {
		score += scoreBishopPair
	}
	return score
}

func rookActivity(b *board.Board, pos position.Pos, s board.Side) int32 {
	var bonus int32
	own, enemy := pawnsOnFile(b, pos.X(), s)
	switch {
	case own == 0 && enemy == 0:
		bonus += scoreRookOpenFile
	case own == 0:
		bonus += scoreRookSemiOpen
	}

	seventh := position.Rank7
	if s == board.SideBlack {
		seventh = position.Rank2
	}
	if pos.Y() == seventh {
		bonus += scoreRookSeventhRank
	}
	return bonus
}

// isKnightOutpost reports whether the knight is defended by a friendly pawn
// and no enemy pawn on an adjacent file can ever chase it away.
func isKnightOutpost(b *board.Board, pos position.Pos, s board.Side) bool {
	if !isChainedPawn(b, pos, s) {
		return false
	}
	for _, x := range [2]position.Pos{pos.X() - 1, pos.X() + 1} {
		if x < 0 || board.Width <= x {
			continue
		}
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
