package chess

import "strings"

// MoveType classifies a validated move.
type MoveType int

const (
	PlainMove MoveType = iota
	Attack
	Castle
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	switch t {
	case PlainMove:
		return "move"
	case Attack:
		return "attack"
	case Castle:
		return "castle"
	}
	return "unknown"
}

// MoveEffect is a set of side effects attached to a committed move.
type MoveEffect uint8

const (
	EffectCheck MoveEffect = 1 << iota
	EffectCheckmate
	EffectPromotion
)

// Has reports whether the set contains all of the given effects.
func (e MoveEffect) Has(f MoveEffect) bool {
	return e&f == f
}

// Move records a move: the piece that moved, its source and destination,
// the move's classification and, once committed, its side effects. A Move
// is constructed provisionally during validation and finalized only on
// commit; its notation is derived, never stored.
type Move struct {
	Piece   *Piece
	Src     Position
	Dst     Position
	Type    MoveType
	Effects MoveEffect
}

// Notation returns the move's long algebraic text. Castles are "O-O" or
// "O-O-O"; every other move is the piece letter, the source square, "-"
// for a plain move or "x" for a capture, and the destination square.
// A promotion appends "=Q", then checkmate "#" or check "+" follows,
// checkmate taking priority.
func (m *Move) Notation() string {
	if m.Type == Castle {
		if m.Dst.File == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	separator := "-"
	if m.Type == Attack {
		separator = "x"
	}

	var b strings.Builder
	b.WriteString(m.Piece.Type.Letter())
	b.WriteString(m.Src.Name())
	b.WriteString(separator)
	b.WriteString(m.Dst.Name())
	if m.Effects.Has(EffectPromotion) {
		b.WriteString("=Q")
	}
	if m.Effects.Has(EffectCheckmate) {
		b.WriteString("#")
	} else if m.Effects.Has(EffectCheck) {
		b.WriteString("+")
	}
	return b.String()
}
