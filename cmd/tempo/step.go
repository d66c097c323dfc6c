package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/daystram/tempo/board"
)

// step soaks the move executor: it plays random legal moves until the game
// ends, cross-checking the incremental hash against a full recomputation
// after every ply.
func step(fen string, maxSteps int) error {
	log.Println("============ step")
	b, _, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(1))
	for s := 0; s < maxSteps; s++ {
		mvs := b.GenerateMoves()
		if len(mvs) == 0 {
			break
		}
		mv := mvs[rng.Intn(len(mvs))]
		b.Apply(mv)

		if b.Hash() != b.ComputeHash() {
			return fmt.Errorf("hash diverged after %s: %016x != %016x", mv.UCI(), b.Hash(), b.ComputeHash())
		}

		fmt.Printf("\n===== [#%d] %s: %s\n", s/2+1, mv.IsTurn, mv)
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
		fmt.Println(b.DebugString())
		if st := b.State(); !st.IsRunning() {
			fmt.Println(st)
			break
		}
	}
	return nil
}
