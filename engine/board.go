// Package engine maintains chess board state and implements move
// validation, transactional move application and checkmate detection over
// the core types in the chess package.
//
// All operations are synchronous and the board is the single piece of
// mutable state. Speculative applies during checkmate search nest
// strictly LIFO; callers that want to evaluate candidates in parallel
// must give each candidate its own Clone.
package engine

import (
	"github.com/charvei/chess"
)

// Board owns every live piece and the square index over them.
//
// Invariant: every occupied square holds a piece whose Position is that
// square, and every live piece occupies exactly one square. Captured
// pieces leave both the index and the roster. Callers must not retain
// piece references across a move; re-query after any apply.
type Board struct {
	squares map[chess.Position]*chess.Piece
	pieces  []*chess.Piece
}

// NewBoard builds a board holding exactly the given pieces. When two
// pieces share a square the later one wins and the shadowed piece is
// discarded, keeping the square index and the roster in agreement.
func NewBoard(pieces ...*chess.Piece) *Board {
	b := &Board{
		squares: make(map[chess.Position]*chess.Piece, len(pieces)),
		pieces:  make([]*chess.Piece, 0, len(pieces)),
	}
	for _, p := range pieces {
		if prev := b.squares[p.Position]; prev != nil {
			b.dropFromRoster(prev)
		}
		b.squares[p.Position] = p
		b.pieces = append(b.pieces, p)
	}
	return b
}

// NewInitialBoard builds the standard 32-piece starting position: back
// ranks on ranks 0 (Black) and 7 (White), pawns on ranks 1 and 6, queens
// on file 3 and kings on file 4.
func NewInitialBoard() *Board {
	return NewBoard(initialPieces()...)
}

func initialPieces() []*chess.Piece {
	pieces := make([]*chess.Piece, 0, 32)
	for file := 0; file < chess.BoardSize; file++ {
		pieces = append(pieces,
			chess.NewPiece(chess.Pawn, chess.Black, chess.Position{Rank: 1, File: file}),
			chess.NewPiece(chess.Pawn, chess.White, chess.Position{Rank: 6, File: file}),
		)
	}
	backRank := []chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for file, t := range backRank {
		pieces = append(pieces,
			chess.NewPiece(t, chess.Black, chess.Position{Rank: 0, File: file}),
			chess.NewPiece(t, chess.White, chess.Position{Rank: 7, File: file}),
		)
	}
	return pieces
}

// PieceAt returns the occupant of pos, or nil for an empty square. It
// never mutates the board.
func (b *Board) PieceAt(pos chess.Position) *chess.Piece {
	return b.squares[pos]
}

// Pieces returns the live piece roster. The returned slice is a copy;
// the pieces themselves are the board's and must not be mutated.
func (b *Board) Pieces() []*chess.Piece {
	pieces := make([]*chess.Piece, len(b.pieces))
	copy(pieces, b.pieces)
	return pieces
}

// King returns side's king, or nil if the position has none (test
// positions may omit a king).
func (b *Board) King(side chess.Side) *chess.Piece {
	for _, p := range b.pieces {
		if p.Type == chess.King && p.Side == side {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the board sharing no state with b.
func (b *Board) Clone() *Board {
	pieces := make([]*chess.Piece, len(b.pieces))
	for i, p := range b.pieces {
		cp := *p
		pieces[i] = &cp
	}
	return NewBoard(pieces...)
}

// dropFromRoster removes p from the piece roster. The square index is
// maintained separately by the caller.
func (b *Board) dropFromRoster(p *chess.Piece) {
	for i, q := range b.pieces {
		if q == p {
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
			return
		}
	}
}
