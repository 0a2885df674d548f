package engine

import "github.com/charvei/chess"

// MoveMode selects which vector set PossibleMoves enumerates.
type MoveMode int

const (
	ModeMove MoveMode = iota
	ModeAttack
)

// PossibleMoves walks each of the piece's vectors and collects the squares
// it can reach on the current board. A ray stops at the board edge, and
// always includes the first occupied square it meets (friend or foe) and
// nothing beyond it. Same-side occupation is not the generator's concern;
// validation rejects it separately, which lets the one rule serve both
// move and attack enumeration.
func (b *Board) PossibleMoves(piece *chess.Piece, mode MoveMode) []chess.Position {
	set := piece.MoveSet()
	if mode == ModeAttack {
		set = piece.AttackSet()
	}

	var moves []chess.Position
	for _, vec := range set {
		for step := 1; step <= vec.Magnitude; step++ {
			dst := vec.Step(piece.Position, step)
			if !dst.OnBoard() {
				break
			}
			moves = append(moves, dst)
			if b.PieceAt(dst) != nil {
				break
			}
		}
	}
	return moves
}

// containsPosition reports whether pos appears in list.
func containsPosition(list []chess.Position, pos chess.Position) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}
	return false
}
