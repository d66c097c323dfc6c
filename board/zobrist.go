package board

import "github.com/daystram/tempo/position"

// 781 keys in total: 12 piece-color combinations per square, 16 castling
// rights combinations, 8 en passant files, and the side to move.
var (
	zobristConstantPiece      [2 + 1][6 + 1][TotalCells]uint64
	zobristConstantCastle     [16]uint64
	zobristConstantEnPassant  [Width]uint64
	zobristConstantSideToMove uint64
)

const zobristSeed uint64 = 0x0123456789ABCDEF

func init() {
	r := &zobristRand{s: zobristSeed}
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, p := range []Piece{PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing} {
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				zobristConstantPiece[s][p][pos] = r.next()
			}
		}
	}
	for i := range zobristConstantCastle {
		zobristConstantCastle[i] = r.next()
	}
	for i := range zobristConstantEnPassant {
		zobristConstantEnPassant[i] = r.next()
	}
	zobristConstantSideToMove = r.next()
}

// zobristRand is a xorshift64* generator with a fixed seed, so key tables are
// identical on every run.
type zobristRand struct {
	s uint64
}

func (r *zobristRand) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// ComputeHash recomputes the Zobrist hash of the entire position from
// scratch. Apart from position loading, this is useful only for verifying the
// incrementally maintained Hash.
func (b *Board) ComputeHash() uint64 {
	var hash uint64
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if c := b.cells[pos]; !c.IsEmpty() {
			hash ^= zobristConstantPiece[c.Side()][c.Piece()][pos]
		}
	}
	hash ^= zobristConstantCastle[b.castleRights]
	if b.enPassantPos != flagNoEnPassant {
		hash ^= zobristConstantEnPassant[b.enPassantPos.X()]
	}
	if b.turn == SideBlack {
		hash ^= zobristConstantSideToMove
	}
	return hash
}
