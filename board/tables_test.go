package board

import (
	"testing"

	"github.com/daystram/tempo/position"
)

func TestAttackTables(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		pos        position.Pos
		wantKnight int
		wantKing   int
		wantRayN   int
		wantRayNE  int
	}{
		{name: "corner a1", pos: position.A1, wantKnight: 2, wantKing: 3, wantRayN: 7, wantRayNE: 7},
		{name: "corner h8", pos: position.H8, wantKnight: 2, wantKing: 3, wantRayN: 0, wantRayNE: 0},
		{name: "center e4", pos: position.E4, wantKnight: 8, wantKing: 8, wantRayN: 4, wantRayNE: 3},
		{name: "edge a4", pos: position.A4, wantKnight: 4, wantKing: 5, wantRayN: 4, wantRayNE: 4},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := len(KnightAttacks(tt.pos)); got != tt.wantKnight {
				t.Errorf("knight targets: got %d, want %d", got, tt.wantKnight)
			}
			if got := len(KingAttacks(tt.pos)); got != tt.wantKing {
				t.Errorf("king targets: got %d, want %d", got, tt.wantKing)
			}
			if got := len(Ray(tt.pos, DirectionN)); got != tt.wantRayN {
				t.Errorf("ray N length: got %d, want %d", got, tt.wantRayN)
			}
			if got := len(Ray(tt.pos, DirectionNE)); got != tt.wantRayNE {
				t.Errorf("ray NE length: got %d, want %d", got, tt.wantRayNE)
			}
		})
	}
}

func TestDistanceTables(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		a, b          position.Pos
		wantChebyshev uint8
		wantManhattan uint8
	}{
		{name: "same square", a: position.E4, b: position.E4, wantChebyshev: 0, wantManhattan: 0},
		{name: "adjacent lateral", a: position.E4, b: position.E5, wantChebyshev: 1, wantManhattan: 1},
		{name: "adjacent diagonal", a: position.E4, b: position.F5, wantChebyshev: 1, wantManhattan: 2},
		{name: "opposite corners", a: position.A1, b: position.H8, wantChebyshev: 7, wantManhattan: 14},
		{name: "knight hop", a: position.G1, b: position.F3, wantChebyshev: 2, wantManhattan: 3},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Distance(tt.a, tt.b); got != tt.wantChebyshev {
				t.Errorf("chebyshev: got %d, want %d", got, tt.wantChebyshev)
			}
			if got := ManhattanDistance(tt.a, tt.b); got != tt.wantManhattan {
				t.Errorf("manhattan: got %d, want %d", got, tt.wantManhattan)
			}
		})
	}
}
