// Package chess provides the core chess types: board geometry, the piece
// catalog, move records with their long algebraic notation, and the rule
// violations a move attempt can fail with.
package chess

// Side identifies one of the two players.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}
