package board

import "github.com/daystram/tempo/position"

// undoRecord captures everything Apply destroys so Revert can restore the
// exact prior state in one step.
type undoRecord struct {
	mv            Move
	captured      cell
	capturedPos   position.Pos
	castleRights  CastleRights
	enPassantPos  position.Pos
	halfMoveClock uint16
	hash          uint64
}

// Apply executes a pseudo-legal move in place, pushing an undo snapshot and
// appending the pre-move hash to the repetition history. The hash is updated
// incrementally in lockstep with each board mutation.
func (b *Board) Apply(mv Move) {
	undo := undoRecord{
		mv:            mv,
		castleRights:  b.castleRights,
		enPassantPos:  b.enPassantPos,
		halfMoveClock: b.halfMoveClock,
		hash:          b.hash,
	}
	b.hashHistory = append(b.hashHistory, b.hash)

	us, them := b.turn, b.turn.Opposite()

	// remove the captured piece, which sits off the destination square for
	// en passant
	if mv.IsCapture {
		capturedPos := mv.To
		if mv.IsEnPassant {
			if us == SideWhite {
				capturedPos = mv.To - Width
			} else {
				capturedPos = mv.To + Width
			}
		}
		undo.captured = b.cells[capturedPos]
		undo.capturedPos = capturedPos
		b.hash ^= zobristConstantPiece[them][undo.captured.Piece()][capturedPos]
		b.cells[capturedPos] = 0
	}

	// relocate the mover, substituting the promoted piece if set
	arriving := mv.Piece
	if mv.IsPromote != PieceUnknown {
		arriving = mv.IsPromote
	}
	b.cells[mv.From] = 0
	b.cells[mv.To] = newCell(us, arriving)
	b.hash ^= zobristConstantPiece[us][mv.Piece][mv.From]
	b.hash ^= zobristConstantPiece[us][arriving][mv.To]

	// castling also hops the rook
	if mv.IsCastle != CastleDirectionUnknown {
		hops := posCastling[mv.IsCastle][PieceRook]
		b.cells[hops[0]] = 0
		b.cells[hops[1]] = newCell(us, PieceRook)
		b.hash ^= zobristConstantPiece[us][PieceRook][hops[0]]
		b.hash ^= zobristConstantPiece[us][PieceRook][hops[1]]
	}

	// castling rights: king moves clear both own rights, rook moves and rook
	// captures clear the matching corner right
	if mv.Piece == PieceKing {
		if us == SideWhite {
			b.castleRights.Set(CastleDirectionWhiteRight, false)
			b.castleRights.Set(CastleDirectionWhiteLeft, false)
		} else {
			b.castleRights.Set(CastleDirectionBlackRight, false)
			b.castleRights.Set(CastleDirectionBlackLeft, false)
		}
	}
	if mv.Piece == PieceRook {
		b.clearCornerRight(mv.From)
	}
	if mv.IsCapture && undo.captured.Piece() == PieceRook {
		b.clearCornerRight(undo.capturedPos)
	}
	if undo.castleRights != b.castleRights {
		b.hash ^= zobristConstantCastle[undo.castleRights]
		b.hash ^= zobristConstantCastle[b.castleRights]
	}

	// en passant target: set only on a two-square pawn advance, else cleared
	b.enPassantPos = flagNoEnPassant
	if mv.Piece == PiecePawn && (mv.To-mv.From == 2*Width || mv.From-mv.To == 2*Width) {
		b.enPassantPos = (mv.From + mv.To) / 2
	}
	if undo.enPassantPos != flagNoEnPassant {
		b.hash ^= zobristConstantEnPassant[undo.enPassantPos.X()]
	}
	if b.enPassantPos != flagNoEnPassant {
		b.hash ^= zobristConstantEnPassant[b.enPassantPos.X()]
	}

	// clocks
	if mv.Piece == PiecePawn || mv.IsCapture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if us == SideBlack {
		b.fullMoveClock++
	}

	b.turn = them
	b.hash ^= zobristConstantSideToMove

	b.undoStack = append(b.undoStack, undo)
}

// Revert undoes exactly the most recent Apply. Reverting with an empty undo
// stack is a caller error: the board is left untouched and ErrNoMoveToRevert
// is returned.
func (b *Board) Revert() error {
	if len(b.undoStack) == 0 {
		return ErrNoMoveToRevert
	}
	undo := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.hashHistory = b.hashHistory[:len(b.hashHistory)-1]

	mv := undo.mv
	us := mv.IsTurn

	b.castleRights = undo.castleRights
	b.enPassantPos = undo.enPassantPos
	b.halfMoveClock = undo.halfMoveClock
	b.hash = undo.hash
	if us == SideBlack {
		b.fullMoveClock--
	}
	b.turn = us

	// reverse placement; promotions restore a pawn, not the promoted piece
	b.cells[mv.To] = 0
	b.cells[mv.From] = newCell(us, mv.Piece)
	if mv.IsCastle != CastleDirectionUnknown {
		hops := posCastling[mv.IsCastle][PieceRook]
		b.cells[hops[1]] = 0
		b.cells[hops[0]] = newCell(us, PieceRook)
	}
	if mv.IsCapture {
		b.cells[undo.capturedPos] = undo.captured
	}
	return nil
}

func (b *Board) clearCornerRight(pos position.Pos) {
	switch pos {
	case position.A1:
		b.castleRights.Set(CastleDirectionWhiteLeft, false)
	case position.H1:
		b.castleRights.Set(CastleDirectionWhiteRight, false)
	case position.A8:
		b.castleRights.Set(CastleDirectionBlackLeft, false)
	case position.H8:
		b.castleRights.Set(CastleDirectionBlackRight, false)
	}
}
