package engine

import "github.com/charvei/chess"

// validateCastle enforces the castling preconditions: an unmoved king, an
// unmoved rook on the matching corner, a clear path between them, a king
// not currently in check, and no attacked square on the king's transit
// (every square it crosses, destination included).
func (b *Board) validateCastle(king *chess.Piece, src, dst chess.Position) error {
	if king.Moved {
		return moveErr(chess.ErrKingMoved, src, dst, king.Side)
	}

	rank := src.Rank
	var between []chess.Position
	var rookPos chess.Position
	if dst.File == src.File+2 {
		between = []chess.Position{{Rank: rank, File: 5}, {Rank: rank, File: 6}}
		rookPos = chess.Position{Rank: rank, File: 7}
	} else {
		between = []chess.Position{{Rank: rank, File: 1}, {Rank: rank, File: 2}, {Rank: rank, File: 3}}
		rookPos = chess.Position{Rank: rank, File: 0}
	}

	rook := b.PieceAt(rookPos)
	if rook == nil || rook.Type != chess.Rook || rook.Moved {
		return moveErr(chess.ErrRookUnavailable, src, dst, king.Side)
	}

	for _, pos := range between {
		if b.PieceAt(pos) != nil {
			return moveErr(chess.ErrCastleBlocked, src, dst, king.Side)
		}
	}

	enemy := king.Side.Opposite()
	if len(b.AttackersOf(src, enemy, ModeAttack)) > 0 {
		return moveErr(chess.ErrCastleInCheck, src, dst, king.Side)
	}
	for _, pos := range kingTransit(src, dst) {
		if len(b.AttackersOf(pos, enemy, ModeAttack)) > 0 {
			return moveErr(chess.ErrCastleThroughCheck, src, dst, king.Side)
		}
	}
	return nil
}

// kingTransit lists the squares the king crosses while castling,
// destination included, source excluded.
func kingTransit(src, dst chess.Position) []chess.Position {
	step := 1
	if dst.File < src.File {
		step = -1
	}
	var transit []chess.Position
	for file := src.File + step; ; file += step {
		transit = append(transit, chess.Position{Rank: src.Rank, File: file})
		if file == dst.File {
			break
		}
	}
	return transit
}

// castleRookMove returns the rook's source and destination squares for a
// castle bringing the king to dst.
func castleRookMove(src, dst chess.Position) (chess.Position, chess.Position) {
	if dst.File == 6 {
		return chess.Position{Rank: src.Rank, File: 7}, chess.Position{Rank: src.Rank, File: 5}
	}
	return chess.Position{Rank: src.Rank, File: 0}, chess.Position{Rank: src.Rank, File: 3}
}
