package engine

import "github.com/charvei/chess"

// attackProbes is the union of the queen's slides and the knight's leaps,
// a superset of every piece's attack geometry: bishop and rook rays are
// queen subsets, king steps are queen slides at magnitude 1, and pawn
// attacks are diagonal single steps the queen vectors cover.
var attackProbes = []chess.Vector{
	{Rank: 1, File: 1, Magnitude: 8},
	{Rank: 1, File: -1, Magnitude: 8},
	{Rank: -1, File: 1, Magnitude: 8},
	{Rank: -1, File: -1, Magnitude: 8},
	{Rank: 1, File: 0, Magnitude: 8},
	{Rank: -1, File: 0, Magnitude: 8},
	{Rank: 0, File: 1, Magnitude: 8},
	{Rank: 0, File: -1, Magnitude: 8},
	{Rank: 2, File: 1, Magnitude: 1},
	{Rank: 2, File: -1, Magnitude: 1},
	{Rank: -2, File: 1, Magnitude: 1},
	{Rank: -2, File: -1, Magnitude: 1},
	{Rank: 1, File: 2, Magnitude: 1},
	{Rank: 1, File: -2, Magnitude: 1},
	{Rank: -1, File: 2, Magnitude: 1},
	{Rank: -1, File: -2, Magnitude: 1},
}

// AttackersOf returns every piece of side that can reach pos: with
// ModeAttack the pieces attacking the square, with ModeMove the pieces
// that could move onto it (used to find interposition candidates).
//
// Each probe ray stops at its first occupant. A found piece of the right
// side is then re-validated against its own enumeration, which rejects
// false positives such as a pawn approached from its own direction of
// travel or a rook sitting beyond a blocker. The query walks the board
// every time; nothing is precomputed across mutations.
func (b *Board) AttackersOf(pos chess.Position, side chess.Side, mode MoveMode) []*chess.Piece {
	var attackers []*chess.Piece
	for _, vec := range attackProbes {
		for step := 1; step <= vec.Magnitude; step++ {
			probe := vec.Step(pos, step)
			if !probe.OnBoard() {
				break
			}
			occupant := b.PieceAt(probe)
			if occupant == nil {
				continue
			}
			if occupant.Side == side && containsPosition(b.PossibleMoves(occupant, mode), pos) {
				attackers = append(attackers, occupant)
			}
			break
		}
	}
	return attackers
}

// checkers returns the enemy pieces currently attacking side's king.
func (b *Board) checkers(side chess.Side) []*chess.Piece {
	king := b.King(side)
	if king == nil {
		return nil
	}
	return b.AttackersOf(king.Position, side.Opposite(), ModeAttack)
}
