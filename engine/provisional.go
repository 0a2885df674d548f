package engine

import "github.com/charvei/chess"

// provisionalMove speculatively relocates a piece, remembering exactly
// what it changed so rollback can restore the board bit for bit: the
// prior destination occupant, the mover's Moved flag, and any castling
// rook or promotion side effect added before commit. Instances nest
// strictly LIFO during checkmate search.
//
// Roster bookkeeping (removing captured pieces, swapping a promoted pawn
// for its queen) is deferred to commit so that rollback stays a pure
// snapshot restore of the square index and piece fields.
type provisionalMove struct {
	board *Board
	move  *chess.Move

	captured *chess.Piece // prior destination occupant, if any
	wasMoved bool         // mover's prior Moved flag

	rook         *chess.Piece // castling rook side effect, if applied
	rookSrc      chess.Position
	rookDst      chess.Position
	rookWasMoved bool

	pawn  *chess.Piece // promotion side effect, if applied
	queen *chess.Piece

	committed bool
}

// newProvisionalMove validates (src, dst, player) and, on success,
// applies the plain relocation: source square cleared, mover placed at
// the destination, Moved set. Side effects join the same snapshot via
// moveRook and promote. The caller must finish with commit or rollback.
func (b *Board) newProvisionalMove(src, dst chess.Position, player chess.Side) (*provisionalMove, error) {
	move, err := b.Validate(src, dst, player)
	if err != nil {
		return nil, err
	}

	pm := &provisionalMove{
		board:    b,
		move:     move,
		captured: b.PieceAt(dst),
		wasMoved: move.Piece.Moved,
	}
	delete(b.squares, src)
	b.squares[dst] = move.Piece
	move.Piece.Position = dst
	move.Piece.Moved = true
	return pm, nil
}

// moveRook relocates the castling rook inside this transaction, so a
// later rollback undoes it along with the king's own relocation.
func (pm *provisionalMove) moveRook() {
	pm.rookSrc, pm.rookDst = castleRookMove(pm.move.Src, pm.move.Dst)
	pm.rook = pm.board.PieceAt(pm.rookSrc)
	pm.rookWasMoved = pm.rook.Moved

	delete(pm.board.squares, pm.rookSrc)
	pm.board.squares[pm.rookDst] = pm.rook
	pm.rook.Position = pm.rookDst
	pm.rook.Moved = true
}

// promote replaces the pawn at the destination with a queen of the same
// side and flags the effect. The roster swap happens at commit.
func (pm *provisionalMove) promote() {
	pm.pawn = pm.move.Piece
	pm.queen = chess.NewPiece(chess.Queen, pm.pawn.Side, pm.move.Dst)
	pm.queen.Moved = true
	pm.board.squares[pm.move.Dst] = pm.queen
	pm.move.Effects |= chess.EffectPromotion
}

// rollback undoes the side effects and the relocation, most recent
// first. It is a no-op after commit.
func (pm *provisionalMove) rollback() {
	if pm.committed {
		return
	}

	if pm.queen != nil {
		pm.board.squares[pm.move.Dst] = pm.pawn
		pm.queen = nil
		pm.move.Effects &^= chess.EffectPromotion
	}

	if pm.rook != nil {
		delete(pm.board.squares, pm.rookDst)
		pm.board.squares[pm.rookSrc] = pm.rook
		pm.rook.Position = pm.rookSrc
		pm.rook.Moved = pm.rookWasMoved
		pm.rook = nil
	}

	pm.board.squares[pm.move.Src] = pm.move.Piece
	if pm.captured != nil {
		pm.board.squares[pm.move.Dst] = pm.captured
	} else {
		delete(pm.board.squares, pm.move.Dst)
	}
	pm.move.Piece.Position = pm.move.Src
	pm.move.Piece.Moved = pm.wasMoved
}

// commit finalizes the move: captured pieces leave the roster, and a
// promoted pawn is swapped for its queen.
func (pm *provisionalMove) commit() {
	pm.committed = true
	if pm.captured != nil {
		pm.board.dropFromRoster(pm.captured)
	}
	if pm.queen != nil {
		pm.board.dropFromRoster(pm.pawn)
		pm.board.pieces = append(pm.board.pieces, pm.queen)
	}
}
