package chess

// PieceType enumerates the closed set of piece kinds.
type PieceType int

const (
	Pawn PieceType = iota
	Rook
	Bishop
	Knight
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"Pawn", "Rook", "Bishop", "Knight", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the piece's algebraic notation letter. Pawns have no
// letter and the knight uses "N" to stay distinct from the king.
func (t PieceType) Letter() string {
	letters := []string{"", "R", "B", "N", "Q", "K"}
	if int(t) < len(letters) {
		return letters[t]
	}
	return "?"
}

// Piece is a piece on the board. Its identity (type and side) is fixed
// for its lifetime; only Position and Moved change, and only the owning
// board changes them. The Moved flag matters solely for castling
// eligibility of kings and rooks and for the pawn double-step.
type Piece struct {
	Type     PieceType
	Side     Side
	Position Position
	Moved    bool
}

// NewPiece creates a piece of the given type and side at pos.
func NewPiece(t PieceType, side Side, pos Position) *Piece {
	return &Piece{Type: t, Side: side, Position: pos}
}

var (
	rookVectors = []Vector{
		{Rank: 1, File: 0, Magnitude: 8},
		{Rank: -1, File: 0, Magnitude: 8},
		{Rank: 0, File: 1, Magnitude: 8},
		{Rank: 0, File: -1, Magnitude: 8},
	}
	bishopVectors = []Vector{
		{Rank: 1, File: 1, Magnitude: 8},
		{Rank: 1, File: -1, Magnitude: 8},
		{Rank: -1, File: 1, Magnitude: 8},
		{Rank: -1, File: -1, Magnitude: 8},
	}
	knightVectors = []Vector{
		{Rank: 2, File: 1, Magnitude: 1},
		{Rank: 2, File: -1, Magnitude: 1},
		{Rank: -2, File: 1, Magnitude: 1},
		{Rank: -2, File: -1, Magnitude: 1},
		{Rank: 1, File: 2, Magnitude: 1},
		{Rank: 1, File: -2, Magnitude: 1},
		{Rank: -1, File: 2, Magnitude: 1},
		{Rank: -1, File: -2, Magnitude: 1},
	}
	queenVectors = []Vector{
		{Rank: 1, File: 1, Magnitude: 8},
		{Rank: 1, File: -1, Magnitude: 8},
		{Rank: -1, File: 1, Magnitude: 8},
		{Rank: -1, File: -1, Magnitude: 8},
		{Rank: 1, File: 0, Magnitude: 8},
		{Rank: -1, File: 0, Magnitude: 8},
		{Rank: 0, File: 1, Magnitude: 8},
		{Rank: 0, File: -1, Magnitude: 8},
	}
	kingVectors = []Vector{
		{Rank: 1, File: 1, Magnitude: 1},
		{Rank: 1, File: -1, Magnitude: 1},
		{Rank: -1, File: 1, Magnitude: 1},
		{Rank: -1, File: -1, Magnitude: 1},
		{Rank: 1, File: 0, Magnitude: 1},
		{Rank: -1, File: 0, Magnitude: 1},
		{Rank: 0, File: 1, Magnitude: 1},
		{Rank: 0, File: -1, Magnitude: 1},
	}
)

// MoveSet returns the piece's ordinary movement vectors given its current
// state. Pawns are offered the double step only from their default rank.
func (p *Piece) MoveSet() []Vector {
	switch p.Type {
	case Pawn:
		magnitude := 1
		if p.Position.Rank == p.DefaultRank() {
			magnitude = 2
		}
		return []Vector{{Rank: p.direction(), File: 0, Magnitude: magnitude}}
	case Rook:
		return rookVectors
	case Bishop:
		return bishopVectors
	case Knight:
		return knightVectors
	case Queen:
		return queenVectors
	case King:
		return kingVectors
	}
	return nil
}

// AttackSet returns the vectors the piece captures along. Every piece but
// the pawn attacks exactly where it moves; pawns attack the two forward
// diagonals.
func (p *Piece) AttackSet() []Vector {
	if p.Type != Pawn {
		return p.MoveSet()
	}
	d := p.direction()
	return []Vector{
		{Rank: d, File: 1, Magnitude: 1},
		{Rank: d, File: -1, Magnitude: 1},
	}
}

// SpecialMoves maps a move type to the absolute destination squares
// reachable outside the piece's ordinary geometry. Only an unmoved king
// has any: the two castling squares on its own rank.
func (p *Piece) SpecialMoves() map[MoveType][]Position {
	if p.Type != King || p.Moved {
		return nil
	}
	return map[MoveType][]Position{
		Castle: {
			{Rank: p.Position.Rank, File: 2},
			{Rank: p.Position.Rank, File: 6},
		},
	}
}

// direction is the rank direction a pawn of this side travels. White
// moves toward rank 0, Black toward rank 7.
func (p *Piece) direction() int {
	if p.Side == White {
		return -1
	}
	return 1
}

// DefaultRank is the rank this side's pawns start on.
func (p *Piece) DefaultRank() int {
	if p.Side == White {
		return 6
	}
	return 1
}

// PromotionRank is the far rank at which this side's pawns promote.
func (p *Piece) PromotionRank() int {
	if p.Side == White {
		return 0
	}
	return 7
}

// String describes the piece and its square, e.g. "White Knight at g1".
func (p *Piece) String() string {
	return p.Side.String() + " " + p.Type.String() + " at " + p.Position.String()
}
