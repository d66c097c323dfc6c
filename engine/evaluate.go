package engine

import (
	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/position"
)

var (
	scorePieceValue = [6 + 1]int32{
		board.PiecePawn:   100,
		board.PieceKnight: 320,
		board.PieceBishop: 330,
		board.PieceRook:   500,
		board.PieceQueen:  900,
		board.PieceKing:   20000,
	}

	phaseWeight = [6 + 1]int32{
		board.PieceKnight: 1,
		board.PieceBishop: 1,
		board.PieceRook:   2,
		board.PieceQueen:  4,
	}

	// PST tables taken from https://www.chessprogramming.org/Simplified_Evaluation_Function,
	// written from White's perspective with rank 8 on the first row.
	scorePiecePositionMG = [6 + 1][64]int32{
		board.PiecePawn: {
			0, 0, 0, 0, 0, 0, 0, 0,
			50, 50, 50, 50, 50, 50, 50, 50,
			10, 10, 20, 30, 30, 20, 10, 10,
			5, 5, 10, 25, 25, 10, 5, 5,
			0, 0, 0, 20, 20, 0, 0, 0,
			5, -5, -10, 0, 0, -10, -5, 5,
			5, 10, 10, -20, -20, 10, 10, 5,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.PieceKnight: {
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		board.PieceBishop: {
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
		board.PieceRook: {
			0, 0, 0, 0, 0, 0, 0, 0,
			5, 10, 10, 10, 10, 10, 10, 5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			0, 0, 0, 5, 5, 0, 0, 0,
		},
		board.PieceQueen: {
			-20, -10, -10, -5, -5, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 5, 5, 5, 0, -10,
			-5, 0, 5, 5, 5, 5, 0, -5,
			0, 0, 5, 5, 5, 5, 0, -5,
			-10, 5, 5, 5, 5, 5, 0, -10,
			-10, 0, 5, 0, 0, 0, 0, -10,
			-20, -10, -10, -5, -5, -10, -10, -20,
		},
		board.PieceKing: {
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-20, -30, -30, -40, -40, -30, -30, -20,
			-10, -20, -20, -20, -20, -20, -20, -10,
			20, 20, 0, 0, 0, 0, 20, 20,
			20, 30, 10, 0, 0, 10, 30, 20,
		},
	}

	// scorePiecePositionEG is derived from the middlegame tables in init().
	// Pawns and the king behave differently once queens come off: pawns push
	// for promotion and the king walks to the center.
	scorePiecePositionEG [6 + 1][64]int32

	scorePiecePositionEGPawn = [64]int32{
		0, 0, 0, 0, 0, 0, 0, 0,
		80, 80, 80, 80, 80, 80, 80, 80,
		50, 50, 50, 50, 50, 50, 50, 50,
		30, 30, 30, 30, 30, 30, 30, 30,
		20, 20, 20, 20, 20, 20, 20, 20,
		10, 10, 10, 10, 10, 10, 10, 10,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	scorePiecePositionEGKing = [64]int32{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

func init() {
	scorePiecePositionEG = scorePiecePositionMG
	scorePiecePositionEG[board.PiecePawn] = scorePiecePositionEGPawn
	scorePiecePositionEG[board.PieceKing] = scorePiecePositionEGKing
}

// pstIndex maps a square to its row in the White-perspective tables. Black
// reads the tables flipped vertically.
func pstIndex(s board.Side, pos position.Pos) position.Pos {
	if s == board.SideWhite {
		return (board.Height-1-pos.Y())*board.Width + pos.X()
	}
	return pos
}

// Evaluate scores the position in centipawns, positive meaning White is
// better. Material and piece placement are blended between middlegame and
// endgame tables by game phase, then the mobility, pawn structure, king
// safety, and positional terms are added on top.
func Evaluate(b *board.Board) int32 {
	var mg, eg int32
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		s, p := b.PieceAt(pos)
		if p == board.PieceUnknown {
			continue
		}
		i := pstIndex(s, pos)
		valueMG := scorePieceValue[p] + scorePiecePositionMG[p][i]
		valueEG := scorePieceValue[p] + scorePiecePositionEG[p][i]
		if s == board.SideWhite {
			mg += valueMG
			eg += valueEG
		} else {
			mg -= valueMG
			eg -= valueEG
		}
	}
	score := taperedScore(mg, eg, phase(b))

	score += evaluateMobility(b)
	score += evaluatePawnStructure(b)
	score += evaluateKingSafety(b)
	score += evaluatePositional(b)
	return score
}

// phase weighs the minor and major pieces still on the board, capped at 24
// for the full middlegame.
func phase(b *board.Board) int32 {
	var phase int32
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		_, p := b.PieceAt(pos)
		phase += phaseWeight[p]
	}
	return min(phase, 24)
}

// taperedScore interpolates between the middlegame and endgame scores. The
// weights always sum to 256: the full middlegame (phase 24) scores pure mg,
// and the endgame weight grows faster than linearly as pieces come off so
// positional endgame play kicks in early.
func taperedScore(mg, eg, phase int32) int32 {
	mgWeight := phase*10 + 16
	return (mg*mgWeight + eg*(256-mgWeight)) / 256
}
