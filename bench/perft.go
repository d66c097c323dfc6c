package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/tempo/board"
)

type perftCounters struct {
	nodes uint64
	cap   uint64
	enp   uint64
	cas   uint64
	pro   uint64
	chk   uint64
}

// Perft walks the legal move tree of fen to the given depth and reports node
// counts to out, one line per root move plus a summary. It doubles as a
// correctness oracle: any divergence from published counts means the move
// generator or executor is broken.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	b, _, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	var c perftCounters
	start := time.Now()
	run(b, depth, true, verbose, out, &c)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, c.nodes, int(float64(c.nodes)/elapsed.Seconds()), c.cap, c.enp, c.cas, c.pro, c.chk, elapsed.Seconds())

	return nil
}

// Count returns the number of leaf nodes reachable from b at the given
// depth, leaving b untouched.
func Count(b *board.Board, depth int) uint64 {
	var c perftCounters
	return runPerft(b.Clone(), depth, false, false, nil, &c)
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, c *perftCounters) uint64

// runPerft recurses with in-place make/unmove on a single board.
func runPerft(b *board.Board, d int, root, verbose bool, out chan string, c *perftCounters) uint64 {
	if d == 0 {
		c.nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves() {
		var child uint64
		b.Apply(mv)
		if d == 1 {
			child = 1
			c.nodes++
			countMove(b, mv, c)
		} else {
			child = runPerft(b, d-1, false, verbose, out, c)
		}
		_ = b.Revert()
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

// runPerftParallel fans the root moves out to goroutines, each on its own
// clone of the board.
func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, c *perftCounters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves() {
		mv := mv
		bb := b.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			bb.Apply(mv)
			if d == 1 {
				child = 1
				atomic.AddUint64(&c.nodes, 1)
				countMoveAtomic(bb, mv, c)
			} else {
				var cc perftCounters
				child = runPerft(bb, d-1, false, verbose, out, &cc)
				atomic.AddUint64(&c.nodes, cc.nodes)
				atomic.AddUint64(&c.cap, cc.cap)
				atomic.AddUint64(&c.enp, cc.enp)
				atomic.AddUint64(&c.cas, cc.cas)
				atomic.AddUint64(&c.pro, cc.pro)
				atomic.AddUint64(&c.chk, cc.chk)
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// countMove tallies the move kind counters for a leaf move that has already
// been applied to b.
func countMove(b *board.Board, mv board.Move, c *perftCounters) {
	if mv.IsCapture {
		c.cap++
	}
	if mv.IsEnPassant {
		c.enp++
	}
	if mv.IsCastle != board.CastleDirectionUnknown {
		c.cas++
	}
	if mv.IsPromote != board.PieceUnknown {
		c.pro++
	}
	if b.IsKingChecked(b.Turn()) {
		c.chk++
	}
}

func countMoveAtomic(b *board.Board, mv board.Move, c *perftCounters) {
	if mv.IsCapture {
		atomic.AddUint64(&c.cap, 1)
	}
	if mv.IsEnPassant {
		atomic.AddUint64(&c.enp, 1)
	}
	if mv.IsCastle != board.CastleDirectionUnknown {
		atomic.AddUint64(&c.cas, 1)
	}
	if mv.IsPromote != board.PieceUnknown {
		atomic.AddUint64(&c.pro, 1)
	}
	if b.IsKingChecked(b.Turn()) {
		atomic.AddUint64(&c.chk, 1)
	}
}
