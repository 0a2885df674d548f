package chess

import "testing"

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		name    string
		piece   *Piece
		src     Position
		dst     Position
		mtype   MoveType
		effects MoveEffect
		want    string
	}{
		{
			name:  "kingside castle",
			piece: NewPiece(King, White, Position{Rank: 7, File: 6}),
			src:   Position{Rank: 7, File: 4},
			dst:   Position{Rank: 7, File: 6},
			mtype: Castle,
			want:  "O-O",
		},
		{
			name:  "queenside castle",
			piece: NewPiece(King, Black, Position{Rank: 0, File: 2}),
			src:   Position{Rank: 0, File: 4},
			dst:   Position{Rank: 0, File: 2},
			mtype: Castle,
			want:  "O-O-O",
		},
		{
			name:  "knight development",
			piece: NewPiece(Knight, White, Position{Rank: 5, File: 5}),
			src:   Position{Rank: 7, File: 6},
			dst:   Position{Rank: 5, File: 5},
			mtype: PlainMove,
			want:  "Ng1-f3",
		},
		{
			name:  "pawn push",
			piece: NewPiece(Pawn, White, Position{Rank: 4, File: 4}),
			src:   Position{Rank: 6, File: 4},
			dst:   Position{Rank: 4, File: 4},
			mtype: PlainMove,
			want:  "e2-e4",
		},
		{
			name:  "pawn capture",
			piece: NewPiece(Pawn, White, Position{Rank: 3, File: 3}),
			src:   Position{Rank: 4, File: 4},
			dst:   Position{Rank: 3, File: 3},
			mtype: Attack,
			want:  "e4xd5",
		},
		{
			name:    "capture with check",
			piece:   NewPiece(Queen, White, Position{Rank: 1, File: 5}),
			src:     Position{Rank: 3, File: 7},
			dst:     Position{Rank: 1, File: 5},
			mtype:   Attack,
			effects: EffectCheck,
			want:    "Qh5xf7+",
		},
		{
			name:    "capture with checkmate",
			piece:   NewPiece(Queen, White, Position{Rank: 1, File: 5}),
			src:     Position{Rank: 3, File: 7},
			dst:     Position{Rank: 1, File: 5},
			mtype:   Attack,
			effects: EffectCheck | EffectCheckmate,
			want:    "Qh5xf7#", // checkmate wins over the plain check marker
		},
		{
			name:    "promotion",
			piece:   NewPiece(Pawn, White, Position{Rank: 0, File: 0}),
			src:     Position{Rank: 1, File: 0},
			dst:     Position{Rank: 0, File: 0},
			mtype:   PlainMove,
			effects: EffectPromotion,
			want:    "a7-a8=Q",
		},
		{
			name:    "promotion with checkmate",
			piece:   NewPiece(Pawn, White, Position{Rank: 0, File: 0}),
			src:     Position{Rank: 1, File: 0},
			dst:     Position{Rank: 0, File: 0},
			mtype:   PlainMove,
			effects: EffectPromotion | EffectCheck | EffectCheckmate,
			want:    "a7-a8=Q#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move := &Move{Piece: tt.piece, Src: tt.src, Dst: tt.dst, Type: tt.mtype, Effects: tt.effects}
			if got := move.Notation(); got != tt.want {
				t.Errorf("Notation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveEffectHas(t *testing.T) {
	effects := EffectCheck | EffectPromotion
	if !effects.Has(EffectCheck) || !effects.Has(EffectPromotion) {
		t.Error("Has() missed a present effect")
	}
	if effects.Has(EffectCheckmate) {
		t.Error("Has() reported an absent effect")
	}
	if effects.Has(EffectCheck | EffectCheckmate) {
		t.Error("Has() should require every given effect")
	}
}
