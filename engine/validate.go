package engine

import "github.com/charvei/chess"

// Validate classifies the move (src, dst, player) against the full rule
// set without mutating the board. On success it returns a provisional
// Move record; on failure a MoveError wrapping the specific violation.
//
// Decisions run in order: a piece must exist at src and belong to player;
// a same-side destination fails; an enemy destination must lie in the
// attack enumeration and classifies as a capture; an empty destination is
// first matched against the piece's special-move targets (castling, which
// gets its own precondition checks) and only then against the ordinary
// move enumeration.
func (b *Board) Validate(src, dst chess.Position, player chess.Side) (*chess.Move, error) {
	piece := b.PieceAt(src)
	if piece == nil {
		return nil, moveErr(chess.ErrNoPiece, src, dst, player)
	}
	if piece.Side != player {
		return nil, moveErr(chess.ErrWrongSide, src, dst, player)
	}

	if occupant := b.PieceAt(dst); occupant != nil {
		if occupant.Side == piece.Side {
			return nil, moveErr(chess.ErrFriendlyFire, src, dst, player)
		}
		if !containsPosition(b.PossibleMoves(piece, ModeAttack), dst) {
			return nil, moveErr(chess.ErrNotInAttackSet, src, dst, player)
		}
		return &chess.Move{Piece: piece, Src: src, Dst: dst, Type: chess.Attack}, nil
	}

	// Special-move targets take precedence over the ordinary move set, so
	// castling never needs to appear among the king's ordinary vectors. A
	// castle target only counts when the move is the two-file king shift;
	// a king placed elsewhere can reach the same square as an ordinary
	// step, which falls through to the move enumeration below.
	for moveType, targets := range piece.SpecialMoves() {
		if !containsPosition(targets, dst) {
			continue
		}
		if moveType == chess.Castle {
			if src.Rank != dst.Rank || (dst.File != src.File+2 && dst.File != src.File-2) {
				continue
			}
			if err := b.validateCastle(piece, src, dst); err != nil {
				return nil, err
			}
			return &chess.Move{Piece: piece, Src: src, Dst: dst, Type: chess.Castle}, nil
		}
		return &chess.Move{Piece: piece, Src: src, Dst: dst, Type: moveType}, nil
	}

	if !containsPosition(b.PossibleMoves(piece, ModeMove), dst) {
		return nil, moveErr(chess.ErrNotInMoveSet, src, dst, player)
	}
	return &chess.Move{Piece: piece, Src: src, Dst: dst, Type: chess.PlainMove}, nil
}

func moveErr(err error, src, dst chess.Position, side chess.Side) error {
	return &chess.MoveError{Err: err, Src: src, Dst: dst, Side: side}
}
