// Package game layers turn order, move history and outcome tracking over
// the board engine. It is the orchestration surface a UI or match server
// drives; the engine itself stays rule-only.
package game

import (
	"github.com/google/uuid"

	"github.com/charvei/chess"
	"github.com/charvei/chess/engine"
)

// Reason records how a game ended.
type Reason string

const (
	ReasonCheckmate   Reason = "checkmate"
	ReasonResignation Reason = "resignation"
	ReasonAgreement   Reason = "agreement"
)

// Outcome is a decided game's result.
type Outcome struct {
	Winner chess.Side // meaningful only when Draw is false
	Draw   bool
	Reason Reason
}

// Game is a single game in progress: a board, the side to move, and the
// committed move history.
type Game struct {
	ID      string
	board   *engine.Board
	turn    chess.Side
	history []*chess.Move
	outcome *Outcome
}

// New starts a game from the standard initial position, White to move.
func New() *Game {
	return &Game{
		ID:    uuid.NewString(),
		board: engine.NewInitialBoard(),
		turn:  chess.White,
	}
}

// Board exposes the underlying board for queries. Mutate it only through
// Move.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Side {
	return g.turn
}

// History returns the committed moves in order.
func (g *Game) History() []*chess.Move {
	history := make([]*chess.Move, len(g.history))
	copy(history, g.history)
	return history
}

// Outcome returns the game's result, or nil while play continues.
func (g *Game) Outcome() *Outcome {
	return g.outcome
}

// Move attempts src to dst for side. It fails with ErrGameOver once the
// game is decided and ErrNotYourTurn when side is not to move; rule
// violations pass through from the engine with the board unchanged. A
// committed move is appended to the history, checkmate decides the game,
// and the turn passes.
func (g *Game) Move(side chess.Side, src, dst chess.Position) (*chess.Move, error) {
	if g.outcome != nil {
		return nil, &chess.MoveError{Err: chess.ErrGameOver, Src: src, Dst: dst, Side: side}
	}
	if side != g.turn {
		return nil, &chess.MoveError{Err: chess.ErrNotYourTurn, Src: src, Dst: dst, Side: side}
	}

	move, err := g.board.Move(src, dst, side)
	if err != nil {
		return nil, err
	}

	g.history = append(g.history, move)
	if move.Effects.Has(chess.EffectCheckmate) {
		g.outcome = &Outcome{Winner: side, Reason: ReasonCheckmate}
	}
	g.turn = g.turn.Opposite()
	return move, nil
}

// Resign ends the game in favour of side's opponent.
func (g *Game) Resign(side chess.Side) {
	if g.outcome != nil {
		return
	}
	g.outcome = &Outcome{Winner: side.Opposite(), Reason: ReasonResignation}
}

// AgreeDraw records a draw by agreement.
func (g *Game) AgreeDraw() {
	if g.outcome != nil {
		return
	}
	g.outcome = &Outcome{Draw: true, Reason: ReasonAgreement}
}

// Notation returns the long algebraic text of every committed move, in
// order.
func (g *Game) Notation() []string {
	notation := make([]string, len(g.history))
	for i, move := range g.history {
		notation[i] = move.Notation()
	}
	return notation
}
