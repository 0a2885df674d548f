package engine

import (
	"math/rand"

	"github.com/charvei/chess"
)

const boardSquares = chess.BoardSize * chess.BoardSize

// Zobrist key tables, one key per (square, piece type, side) plus a key
// per square for the Moved flag. Seeded deterministically so hashes are
// stable for a process lifetime and comparable across boards.
var (
	pieceKeys [boardSquares][chess.NumPieceTypes][2]uint64
	movedKeys [boardSquares]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5b0a9c4d3e2f1081))
	for sq := 0; sq < boardSquares; sq++ {
		for t := 0; t < int(chess.NumPieceTypes); t++ {
			pieceKeys[sq][t][0] = rng.Uint64()
			pieceKeys[sq][t][1] = rng.Uint64()
		}
		movedKeys[sq] = rng.Uint64()
	}
}

// Hash returns a Zobrist fingerprint of the full board state: type, side,
// square and Moved flag of every live piece. A rejected move leaves the
// hash unchanged; a committed one changes it. Collisions are possible in
// principle but two boards with equal hashes are, for practical
// purposes, the same position.
func (b *Board) Hash() uint64 {
	var h uint64
	for pos, p := range b.squares {
		sq := pos.Rank*chess.BoardSize + pos.File
		h ^= pieceKeys[sq][p.Type][p.Side]
		if p.Moved {
			h ^= movedKeys[sq]
		}
	}
	return h
}
