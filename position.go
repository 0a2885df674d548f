package chess

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// Rank 0 is Black's back rank, so rank labels run from "8" down to "1".
var (
	fileLabels = [BoardSize]string{"a", "b", "c", "d", "e", "f", "g", "h"}
	rankLabels = [BoardSize]string{"8", "7", "6", "5", "4", "3", "2", "1"}
)

// Position is an immutable (rank, file) pair. Rank 0 is the top of the
// board from White's perspective, i.e. Black's back rank. Out-of-range
// positions are valid values but never occur on a board.
type Position struct {
	Rank int
	File int
}

// OnBoard reports whether the position lies within the 8x8 board.
func (p Position) OnBoard() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// Add returns the position offset by q.
func (p Position) Add(q Position) Position {
	return Position{Rank: p.Rank + q.Rank, File: p.File + q.File}
}

// Name returns the algebraic square name, e.g. "e4". It is only defined
// for positions on the board.
func (p Position) Name() string {
	return fileLabels[p.File] + rankLabels[p.Rank]
}

// String returns the algebraic square name.
func (p Position) String() string {
	if !p.OnBoard() {
		return "offboard"
	}
	return p.Name()
}

// Vector is a relative direction a piece may travel along, with the
// maximum number of steps it may take. Magnitude 1 is a single step;
// magnitude 8 is an unbounded slide, clipped by the board edge or the
// first occupied square.
type Vector struct {
	Rank      int
	File      int
	Magnitude int
}

// Step returns the absolute position reached by following the vector for
// n steps from p.
func (v Vector) Step(p Position, n int) Position {
	return Position{Rank: p.Rank + n*v.Rank, File: p.File + n*v.File}
}
