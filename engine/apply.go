package engine

import "github.com/charvei/chess"

// Move validates and applies (src, dst, player) with all-or-nothing
// semantics. On success the committed move record is returned with its
// side effects (check, checkmate, promotion) flagged; on failure the
// error wraps the specific rule violation and the board is exactly as it
// was before the call, with no partial effects observable.
func (b *Board) Move(src, dst chess.Position, player chess.Side) (*chess.Move, error) {
	pm, err := b.newProvisionalMove(src, dst, player)
	if err != nil {
		return nil, err
	}

	if pm.move.Type == chess.Castle {
		pm.moveRook()
	}
	if mover := pm.move.Piece; mover.Type == chess.Pawn && dst.Rank == mover.PromotionRank() {
		pm.promote()
	}

	// The mover may never leave their own king attacked.
	if len(b.checkers(player)) > 0 {
		pm.rollback()
		return nil, moveErr(chess.ErrSelfCheck, src, dst, player)
	}

	if checkers := b.checkers(player.Opposite()); len(checkers) > 0 {
		pm.move.Effects |= chess.EffectCheck
		if b.isCheckmate(checkers, player.Opposite()) {
			pm.move.Effects |= chess.EffectCheckmate
		}
	}

	pm.commit()
	return pm.move, nil
}
