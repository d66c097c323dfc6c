package engine

import (
	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/position"
)

const (
	scoreKingShield       int32 = 20
	scoreKingOpenFile     int32 = -30
	scoreKingSemiOpenFile int32 = -15
	scoreKingAttacker     int32 = 10
)

// evaluateKingSafety scores pawn cover and attacker pressure around both
// kings, positive favoring White.
func evaluateKingSafety(b *board.Board) int32 {
	return evaluateKingSafetySide(b, board.SideWhite) - evaluateKingSafetySide(b, board.SideBlack)
}

func evaluateKingSafetySide(b *board.Board, s board.Side) int32 {
	king, ok := findPiece(b, s, board.PieceKing)
	if !ok {
		return 0
	}

	var score int32
	score += kingPawnShield(b, king, s)
	score += kingFileExposure(b, king, s)
	score -= kingZoneAttackers(b, king, s)
	return score
}

// kingPawnShield rewards friendly pawns one and two ranks in front of the
// king on its file and the adjacent files.
func kingPawnShield(b *board.Board, king position.Pos, s board.Side) int32 {
	forward := position.Pos(1)
	if s == board.SideBlack {
		forward = -1
	}
	var shield int32
	for x := max(king.X()-1, 0); x <= min(king.X()+1, board.Width-1); x++ {
		for _, dy := range [2]position.Pos{forward, 2 * forward} {
			y := king.Y() + dy
			if y < 0 || board.Height <= y {
				continue
			}
			if ps, pp := b.PieceAt(position.NewPos(x, y)); ps == s && pp == board.PiecePawn {
				shield++
			}
		}
	}
	return shield * scoreKingShield
}

// kingFileExposure penalizes open and semi-open files on and next to the
// king's file.
func kingFileExposure(b *board.Board, king position.Pos, s board.Side) int32 {
	var penalty int32
	for x := max(king.X()-1, 0); x <= min(king.X()+1, board.Width-1); x++ {
		own, enemy := pawnsOnFile(b, x, s)
		switch {
		case own == 0 && enemy == 0:
			penalty += scoreKingOpenFile
		case own == 0:
			penalty += scoreKingSemiOpenFile
		}
	}
	return penalty
}

// kingZoneAttackers counts the squares adjacent to the king reached by enemy
// pawns, knights, or the enemy king.
func kingZoneAttackers(b *board.Board, king position.Pos, s board.Side) int32 {
	them := s.Opposite()
	var attackers int32
	for _, pos := range board.KingAttacks(king) {
		if isAttackedByStepper(b, pos, them) {
			attackers++
		}
	}
	return attackers * scoreKingAttacker
}

func isAttackedByStepper(b *board.Board, pos position.Pos, by board.Side) bool {
	backward := -position.Pos(board.Width)
	if by == board.SideBlack {
		backward = board.Width
	}
	for _, dx := range [2]position.Pos{-1, 1} {
		x := pos.X() + dx
		if x < 0 || board.Width <= x {
			continue
		}
		from := pos + backward + dx
		if from < 0 || board.TotalCells <= from {
			continue
		}
		if ps, pp := b.PieceAt(from); ps == by && pp == board.PiecePawn {
			return true
		}
	}
	for _, from := range board.KnightAttacks(pos) {
		if ps, pp := b.PieceAt(from); ps == by && pp == board.PieceKnight {
			return true
		}
	}
	if enemyKing, ok := findPiece(b, by, board.PieceKing); ok && board.Distance(pos, enemyKing) <= 1 {
		return true
	}
	return false
}

func pawnsOnFile(b *board.Board, x position.Pos, s board.Side) (own, enemy int) {
	for y := position.Pos(0); y < board.Height; y++ {
		ps, pp := b.PieceAt(position.NewPos(x, y))
		if pp != board.PiecePawn {
			continue
		}
		if ps == s {
			own++
		} else {
			enemy++
		}
	}
	return own, enemy
}

func findPiece(b *board.Board, s board.Side, p board.Piece) (position.Pos, bool) {
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if ps, pp := b.PieceAt(pos); ps == s && pp == p {
			return pos, true
		}
	}
	return 0, false
}
