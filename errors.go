package chess

import (
	"errors"
	"fmt"
)

// Sentinel rule violations. All are user-facing and recoverable: whenever
// a move attempt returns one of these, the board is unchanged. Use them
// with errors.Is to distinguish failure causes.
var (
	// ErrNoPiece indicates an empty source square.
	ErrNoPiece = errors.New("no piece at source square")

	// ErrWrongSide indicates an attempt to move the opponent's piece.
	ErrWrongSide = errors.New("piece belongs to the other player")

	// ErrFriendlyFire indicates a destination occupied by the mover's own side.
	ErrFriendlyFire = errors.New("destination occupied by own piece")

	// ErrNotInAttackSet indicates a capture outside the piece's attack set.
	ErrNotInAttackSet = errors.New("destination not in piece's attack set")

	// ErrNotInMoveSet indicates a move outside the piece's move set.
	ErrNotInMoveSet = errors.New("destination not in piece's move set")

	// ErrKingMoved indicates castling with a king that has already moved.
	ErrKingMoved = errors.New("cannot castle: king has already moved")

	// ErrRookUnavailable indicates the corner rook is missing or has moved.
	ErrRookUnavailable = errors.New("cannot castle: rook missing or already moved")

	// ErrCastleBlocked indicates pieces between the king and the rook.
	ErrCastleBlocked = errors.New("cannot castle: path between king and rook is blocked")

	// ErrCastleThroughCheck indicates an attacked square on the king's transit.
	ErrCastleThroughCheck = errors.New("cannot castle through an attacked square")

	// ErrCastleInCheck indicates castling while the king is in check.
	ErrCastleInCheck = errors.New("cannot castle while king is in check")

	// ErrSelfCheck indicates a move that would leave the mover's king attacked.
	ErrSelfCheck = errors.New("king would be in check")

	// ErrNotYourTurn indicates a move attempted out of turn.
	ErrNotYourTurn = errors.New("not this player's turn")

	// ErrGameOver indicates a move attempted after the game was decided.
	ErrGameOver = errors.New("game is already decided")
)

// MoveError wraps a rule violation with the attempted move's context.
// It unwraps to the underlying sentinel so callers can inspect it with
// errors.Is.
type MoveError struct {
	Err  error
	Src  Position
	Dst  Position
	Side Side
}

// Error returns a formatted message including the attempted squares.
func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %s to %s: %v", e.Side, e.Src, e.Dst, e.Err)
}

// Unwrap returns the underlying rule violation.
func (e *MoveError) Unwrap() error {
	return e.Err
}
