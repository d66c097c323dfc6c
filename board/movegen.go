package board

import "github.com/daystram/tempo/position"

// GenerateMoves returns every legal move for the side to move. Pseudo-legal
// candidates are executed on the board and discarded when they leave the own
// king in check.
func (b *Board) GenerateMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	mvs := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		b.Apply(mv)
		if !b.IsKingChecked(mv.IsTurn) {
			mvs = append(mvs, mv)
		}
		_ = b.Revert()
	}
	return mvs
}

// GeneratePseudoLegalMoves returns the moves of the side to move without
// testing for self-check. Castling candidates are fully validated here since
// the transit squares cannot be checked by simulation.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	us := b.turn
	mvs := make([]Move, 0, 48)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		c := b.cells[pos]
		if c.IsEmpty() || c.Side() != us {
			continue
		}
		switch c.Piece() {
		case PiecePawn:
			mvs = b.generatePawnMoves(mvs, pos)
		case PieceKnight:
			for _, to := range KnightAttacks(pos) {
				mvs = b.appendStepMove(mvs, PieceKnight, pos, to)
			}
		case PieceBishop:
			mvs = b.generateSlidingMoves(mvs, PieceBishop, pos, DirectionsDiagonal)
		case PieceRook:
			mvs = b.generateSlidingMoves(mvs, PieceRook, pos, DirectionsLateral)
		case PieceQueen:
			mvs = b.generateSlidingMoves(mvs, PieceQueen, pos, DirectionsAll)
		case PieceKing:
			for _, to := range KingAttacks(pos) {
				mvs = b.appendStepMove(mvs, PieceKing, pos, to)
			}
			mvs = b.generateCastleMoves(mvs, pos)
		}
	}
	return mvs
}

// appendStepMove adds a single-square hop when the target is empty or holds
// an enemy piece.
func (b *Board) appendStepMove(mvs []Move, p Piece, from, to position.Pos) []Move {
	target := b.cells[to]
	if !target.IsEmpty() && target.Side() == b.turn {
		return mvs
	}
	return append(mvs, Move{
		From:      from,
		To:        to,
		Piece:     p,
		IsTurn:    b.turn,
		IsCapture: !target.IsEmpty(),
	})
}

func (b *Board) generateSlidingMoves(mvs []Move, p Piece, from position.Pos, dirs []Direction) []Move {
	for _, dir := range dirs {
		for _, to := range Ray(from, dir) {
			target := b.cells[to]
			if target.IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: b.turn})
				continue
			}
			if target.Side() != b.turn {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: b.turn, IsCapture: true})
			}
			break
		}
	}
	return mvs
}

func (b *Board) generatePawnMoves(mvs []Move, from position.Pos) []Move {
	us := b.turn
	forward, startRank, promoteRank := position.Pos(Width), position.Rank2, position.Rank8
	if us == SideBlack {
		forward, startRank, promoteRank = -Width, position.Rank7, position.Rank1
	}

	// advances
	to := from + forward
	if b.cells[to].IsEmpty() {
		mvs = appendPawnMove(mvs, Move{From: from, To: to, Piece: PiecePawn, IsTurn: us}, promoteRank)
		if from.Y() == startRank && b.cells[to+forward].IsEmpty() {
			mvs = append(mvs, Move{From: from, To: to + forward, Piece: PiecePawn, IsTurn: us})
		}
	}

	// captures, including en passant onto the target square
	for _, dx := range [2]position.Pos{-1, 1} {
		x := from.X() + dx
		if x < 0 || Width <= x {
			continue
		}
		to := from + forward + dx
		target := b.cells[to]
		if !target.IsEmpty() && target.Side() != us {
			mvs = appendPawnMove(mvs, Move{From: from, To: to, Piece: PiecePawn, IsTurn: us, IsCapture: true}, promoteRank)
		}
		if to == b.enPassantPos {
			mvs = append(mvs, Move{From: from, To: to, Piece: PiecePawn, IsTurn: us, IsCapture: true, IsEnPassant: true})
		}
	}
	return mvs
}

// appendPawnMove expands a pawn move reaching the back rank into the four
// promotion moves.
func appendPawnMove(mvs []Move, mv Move, promoteRank position.Pos) []Move {
	if mv.To.Y() != promoteRank {
		return append(mvs, mv)
	}
	for _, p := range PawnPromoteCandidates {
		promo := mv
		promo.IsPromote = p
		mvs = append(mvs, promo)
	}
	return mvs
}

func (b *Board) generateCastleMoves(mvs []Move, from position.Pos) []Move {
	us := b.turn
	if !b.castleRights.IsSideAllowed(us) {
		return mvs
	}
	ds := [2]CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
	if us == SideBlack {
		ds = [2]CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
	}
	for _, d := range ds {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		if from != posCastling[d][PieceKing][0] {
			continue
		}
		rookFrom := posCastling[d][PieceRook][0]
		if b.cells[rookFrom] != newCell(us, PieceRook) {
			continue
		}
		clear := true
		for _, pos := range posCastlingEmpty[d] {
			if !b.cells[pos].IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		safe := true
		for _, pos := range posCastlingSafe[d] {
			if b.IsSquareAttacked(pos, us.Opposite()) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		mvs = append(mvs, Move{
			From:     from,
			To:       posCastling[d][PieceKing][1],
			Piece:    PieceKing,
			IsTurn:   us,
			IsCastle: d,
		})
	}
	return mvs
}

// IsSquareAttacked reports whether side by attacks pos. Pins and legality of
// the attacker's own king are ignored.
func (b *Board) IsSquareAttacked(pos position.Pos, by Side) bool {
	// pawns: look at the squares a pawn of side by would attack pos from
	backward := -position.Pos(Width)
	if by == SideBlack {
		backward = Width
	}
	for _, dx := range [2]position.Pos{-1, 1} {
		x := pos.X() + dx
		if x < 0 || Width <= x {
			continue
		}
		from := pos + backward + dx
		if 0 <= from && from < TotalCells && b.cells[from] == newCell(by, PiecePawn) {
			return true
		}
	}

	for _, from := range KnightAttacks(pos) {
		if b.cells[from] == newCell(by, PieceKnight) {
			return true
		}
	}
	for _, from := range KingAttacks(pos) {
		if b.cells[from] == newCell(by, PieceKing) {
			return true
		}
	}

	for _, dir := range DirectionsLateral {
		if p, ok := b.firstPieceOnRay(pos, dir, by); ok && (p == PieceRook || p == PieceQueen) {
			return true
		}
	}
	for _, dir := range DirectionsDiagonal {
		if p, ok := b.firstPieceOnRay(pos, dir, by); ok && (p == PieceBishop || p == PieceQueen) {
			return true
		}
	}
	return false
}

// firstPieceOnRay walks outward from pos and returns the first piece hit, if
// it belongs to side by.
func (b *Board) firstPieceOnRay(pos position.Pos, dir Direction, by Side) (Piece, bool) {
	for _, to := range Ray(pos, dir) {
		c := b.cells[to]
		if c.IsEmpty() {
			continue
		}
		if c.Side() == by {
			return c.Piece(), true
		}
		return PieceUnknown, false
	}
	return PieceUnknown, false
}

// IsKingChecked reports whether the king of side s is attacked.
func (b *Board) IsKingChecked(s Side) bool {
	king, ok := b.findKing(s)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, s.Opposite())
}

func (b *Board) findKing(s Side) (position.Pos, bool) {
	want := newCell(s, PieceKing)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.cells[pos] == want {
			return pos, true
		}
	}
	return 0, false
}
