package engine

import "github.com/charvei/chess"

// isCheckmate reports whether player, whose king the given checkers
// currently attack, has no legal response. The escapes tried are moving
// the king, capturing the checking piece, and interposing a piece on the
// checking ray. Capture and interposition can only answer a single
// checker; a double check is decided by king moves alone. A position
// without player's king is never checkmate (test positions may omit a
// king).
func (b *Board) isCheckmate(checkers []*chess.Piece, player chess.Side) bool {
	king := b.King(player)
	if king == nil {
		return false
	}

	// King escape: special moves are excluded, only the ordinary steps.
	for _, dst := range b.PossibleMoves(king, ModeMove) {
		if b.escapesCheck(king.Position, dst, player) {
			return false
		}
	}

	if len(checkers) != 1 {
		return true
	}
	checker := checkers[0]

	// Capture the checker.
	for _, counter := range b.AttackersOf(checker.Position, player, ModeAttack) {
		if b.escapesCheck(counter.Position, checker.Position, player) {
			return false
		}
	}

	// Interpose on the checking ray.
	for _, dst := range raySquares(king.Position, checker.Position) {
		for _, blocker := range b.AttackersOf(dst, player, ModeMove) {
			if b.escapesCheck(blocker.Position, dst, player) {
				return false
			}
		}
	}

	return true
}

// escapesCheck speculatively applies src to dst for player and reports
// whether the move is legal and leaves player's king unattacked. The
// board is always restored before returning.
func (b *Board) escapesCheck(src, dst chess.Position, player chess.Side) bool {
	pm, err := b.newProvisionalMove(src, dst, player)
	if err != nil {
		return false
	}
	safe := len(b.checkers(player)) == 0
	pm.rollback()
	return safe
}

// raySquares lists the squares strictly between the king and the checker
// when the attack runs along a rank, file or diagonal, and nothing
// otherwise: a knight's leap or an adjacent checker cannot be blocked.
func raySquares(king, checker chess.Position) []chess.Position {
	dRank := checker.Rank - king.Rank
	dFile := checker.File - king.File
	if dRank != 0 && dFile != 0 && abs(dRank) != abs(dFile) {
		return nil
	}

	steps := max(abs(dRank), abs(dFile))
	if steps < 2 {
		return nil
	}

	vec := chess.Vector{Rank: sign(dRank), File: sign(dFile), Magnitude: steps}
	squares := make([]chess.Position, 0, steps-1)
	for step := 1; step < steps; step++ {
		squares = append(squares, vec.Step(king, step))
	}
	return squares
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
