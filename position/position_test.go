package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     E4,
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     H8,
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     A1,
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestPosComponents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos          Pos
		wantX, wantY Pos
		wantNotation string
	}{
		{pos: A1, wantX: FileA, wantY: Rank1, wantNotation: "a1"},
		{pos: E4, wantX: FileE, wantY: Rank4, wantNotation: "e4"},
		{pos: H8, wantX: FileH, wantY: Rank8, wantNotation: "h8"},
		{pos: C7, wantX: FileC, wantY: Rank7, wantNotation: "c7"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.wantNotation, func(t *testing.T) {
			t.Parallel()
			if got := tt.pos.X(); got != tt.wantX {
				t.Errorf("unexpected X: got=%v want=%v", got, tt.wantX)
			}
			if got := tt.pos.Y(); got != tt.wantY {
				t.Errorf("unexpected Y: got=%v want=%v", got, tt.wantY)
			}
			if got := tt.pos.Notation(); got != tt.wantNotation {
				t.Errorf("unexpected notation: got=%v want=%v", got, tt.wantNotation)
			}
			if got := NewPos(tt.wantX, tt.wantY); got != tt.pos {
				t.Errorf("unexpected NewPos: got=%v want=%v", got, tt.pos)
			}
		})
	}
}
