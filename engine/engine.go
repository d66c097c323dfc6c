package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/position"
)

const (
	// MaxDepth bounds the search; plain alpha-beta gets impractical beyond
	// this without deeper pruning.
	MaxDepth uint8 = 6

	ScoreInfinite  int32 = 1 << 30
	scoreCheckmate int32 = 100000

	scoreOrderCenter int32 = 10
)

var ErrNoLegalMoves = errors.New("no legal moves")

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Logger func(...any)
}

type SearchResult struct {
	Move    board.Move
	Score   int32
	Nodes   uint32
	Elapsed time.Duration
}

type Engine struct {
	nodes  uint32
	logger func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Engine{
		logger: cfg.Logger,
	}
}

// FindBestMove searches the position with fixed-depth alpha-beta and returns
// the best move with its evaluation. Scores are always White-positive, so
// White picks the maximum over the root moves and Black the minimum.
func (e *Engine) FindBestMove(b *board.Board, depth uint8) (SearchResult, error) {
	if depth < 1 {
		depth = 1
	}
	depth = min(depth, MaxDepth)
	e.nodes = 0
	startTime := time.Now()

	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}
	orderMoves(b, mvs)

	us := b.Turn()
	bestMove := mvs[0]
	bestScore := -ScoreInfinite
	if us == board.SideBlack {
		bestScore = ScoreInfinite
	}
	alpha, beta := -ScoreInfinite, ScoreInfinite
	for _, mv := range mvs {
		b.Apply(mv)
		score := e.minimax(b, depth-1, alpha, beta, us == board.SideBlack)
		_ = b.Revert()

		if us == board.SideWhite {
			if score > bestScore {
				bestScore = score
				bestMove = mv
			}
			alpha = max(alpha, bestScore)
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = mv
			}
			beta = min(beta, bestScore)
		}
	}

	result := SearchResult{
		Move:    bestMove,
		Score:   bestScore,
		Nodes:   e.nodes,
		Elapsed: time.Since(startTime),
	}
	e.logger(message.NewPrinter(language.English).
		Sprintf("depth:%d best:%s eval:%d nodes:%d t:%s", depth, result.Move.UCI(), result.Score, result.Nodes, result.Elapsed))
	return result, nil
}

// minimax is plain alpha-beta over White-positive scores. Checkmate for the
// side to move collapses to a flat mate score, stalemate to zero.
func (e *Engine) minimax(b *board.Board, depth uint8, alpha, beta int32, maximizing bool) int32 {
	e.nodes++

	if depth == 0 {
		return Evaluate(b)
	}

	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		if b.IsKingChecked(b.Turn()) {
			if maximizing {
				return -scoreCheckmate
			}
			return scoreCheckmate
		}
		return 0
	}
	orderMoves(b, mvs)

	if maximizing {
		best := -ScoreInfinite
		for _, mv := range mvs {
			b.Apply(mv)
			best = max(best, e.minimax(b, depth-1, alpha, beta, false))
			_ = b.Revert()
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}
	best := ScoreInfinite
	for _, mv := range mvs {
		b.Apply(mv)
		best = min(best, e.minimax(b, depth-1, alpha, beta, true))
		_ = b.Revert()
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// orderMoves sorts captures of valuable pieces, promotions, and centralizing
// moves first to tighten the alpha-beta window early.
func orderMoves(b *board.Board, mvs []board.Move) {
	type scoredMove struct {
		mv    board.Move
		score int32
	}
	scored := make([]scoredMove, len(mvs))
	for i, mv := range mvs {
		var score int32
		if _, captured := b.PieceAt(mv.To); captured != board.PieceUnknown {
			score += scorePieceValue[captured]
		}
		if mv.IsPromote != board.PieceUnknown {
			score += scorePieceValue[mv.IsPromote]
		}
		switch mv.To {
		case position.D4, position.E4, position.D5, position.E5:
			score += scoreOrderCenter
		}
		scored[i] = scoredMove{mv: mv, score: score}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	for i := range scored {
		mvs[i] = scored[i].mv
	}
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}
