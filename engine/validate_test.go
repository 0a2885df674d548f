package engine

import (
	"errors"
	"testing"

	"github.com/charvei/chess"
)

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		pieces []*chess.Piece
		src    chess.Position
		dst    chess.Position
		player chess.Side
		want   error
	}{
		{
			name:   "empty source square",
			pieces: nil,
			src:    pos(4, 4),
			dst:    pos(3, 4),
			player: chess.White,
			want:   chess.ErrNoPiece,
		},
		{
			name: "moving the opponent's piece",
			pieces: []*chess.Piece{
				chess.NewPiece(chess.Pawn, chess.Black, pos(1, 4)),
			},
			src:    pos(1, 4),
			dst:    pos(3, 4),
			player: chess.White,
			want:   chess.ErrWrongSide,
		},
		{
			name: "capturing your own piece",
			pieces: []*chess.Piece{
				chess.NewPiece(chess.Rook, chess.White, pos(7, 0)),
				chess.NewPiece(chess.Pawn, chess.White, pos(6, 0)),
			},
			src:    pos(7, 0),
			dst:    pos(6, 0),
			player: chess.White,
			want:   chess.ErrFriendlyFire,
		},
		{
			name: "rook capturing on a diagonal",
			pieces: []*chess.Piece{
				chess.NewPiece(chess.Rook, chess.White, pos(7, 0)),
				chess.NewPiece(chess.Pawn, chess.Black, pos(6, 1)),
			},
			src:    pos(7, 0),
			dst:    pos(6, 1),
			player: chess.White,
			want:   chess.ErrNotInAttackSet,
		},
		{
			name: "pawn capturing straight ahead",
			pieces: []*chess.Piece{
				chess.NewPiece(chess.Pawn, chess.White, pos(6, 4)),
				chess.NewPiece(chess.Knight, chess.Black, pos(5, 4)),
			},
			src:    pos(6, 4),
			dst:    pos(5, 4),
			player: chess.White,
			want:   chess.ErrNotInAttackSet,
		},
		{
			name: "knight moving like a rook",
			pieces: []*chess.Piece{
				chess.NewPiece(chess.Knight, chess.White, pos(7, 6)),
			},
			src:    pos(7, 6),
			dst:    pos(5, 6),
			player: chess.White,
			want:   chess.ErrNotInMoveSet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(tt.pieces...)
			move, err := board.Validate(tt.src, tt.dst, tt.player)
			if move != nil {
				t.Fatalf("Validate returned move %v, want nil", move)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate error = %v, want %v", err, tt.want)
			}

			var moveErr *chess.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("Validate error %v is not a MoveError", err)
			}
			if moveErr.Src != tt.src || moveErr.Dst != tt.dst || moveErr.Side != tt.player {
				t.Errorf("MoveError context = (%v, %v, %v), want (%v, %v, %v)",
					moveErr.Src, moveErr.Dst, moveErr.Side, tt.src, tt.dst, tt.player)
			}
		})
	}
}

func TestValidateClassification(t *testing.T) {
	board := NewBoard(
		chess.NewPiece(chess.King, chess.White, pos(7, 4)),
		chess.NewPiece(chess.Rook, chess.White, pos(7, 7)),
		chess.NewPiece(chess.Pawn, chess.White, pos(4, 4)),
		chess.NewPiece(chess.Pawn, chess.Black, pos(3, 3)),
		chess.NewPiece(chess.King, chess.Black, pos(0, 4)),
	)

	tests := []struct {
		name   string
		src    chess.Position
		dst    chess.Position
		player chess.Side
		want   chess.MoveType
	}{
		{"pawn advance", pos(4, 4), pos(3, 4), chess.White, chess.PlainMove},
		{"pawn capture", pos(4, 4), pos(3, 3), chess.White, chess.Attack},
		{"kingside castle", pos(7, 4), pos(7, 6), chess.White, chess.Castle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, err := board.Validate(tt.src, tt.dst, tt.player)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if move.Type != tt.want {
				t.Errorf("move type = %v, want %v", move.Type, tt.want)
			}
		})
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	board := NewInitialBoard()
	before := board.Hash()

	if _, err := board.Validate(pos(6, 4), pos(4, 4), chess.White); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, err := board.Validate(pos(7, 1), pos(5, 1), chess.White); err == nil {
		t.Fatal("Validate accepted an illegal knight move")
	}

	if board.Hash() != before {
		t.Error("Validate mutated the board")
	}
}
