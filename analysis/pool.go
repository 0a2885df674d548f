// Package analysis evaluates move candidates in parallel. The engine's
// rollback protocol assumes strictly sequential mutation, so every
// candidate is tried against its own clone of the source board; the
// caller's board is never touched.
package analysis

import (
	"runtime"
	"sync"

	"github.com/charvei/chess"
	"github.com/charvei/chess/engine"
)

// Candidate is a move to evaluate.
type Candidate struct {
	Src chess.Position
	Dst chess.Position
}

// Result is the outcome of evaluating one candidate. Move references
// pieces of the clone it was evaluated on, not the caller's board.
type Result struct {
	Candidate Candidate
	Move      *chess.Move // non-nil when the candidate is legal
	Err       error       // the rule violation otherwise
}

// Pool evaluates candidates across a fixed number of worker goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the work and result channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. By default it uses one worker per available
// CPU and a small channel buffer.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		numWorkers: runtime.GOMAXPROCS(0),
		bufferSize: 64,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate tries every candidate for player, each against a fresh clone
// of board, and returns one result per candidate. Result order is not
// the candidate order.
func (p *Pool) Evaluate(board *engine.Board, player chess.Side, candidates []Candidate) []Result {
	work := make(chan Candidate, p.bufferSize)
	results := make(chan Result, p.bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range work {
				move, err := board.Clone().Move(cand.Src, cand.Dst, player)
				results <- Result{Candidate: cand, Move: move, Err: err}
			}
		}()
	}

	go func() {
		for _, cand := range candidates {
			work <- cand
		}
		close(work)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, 0, len(candidates))
	for r := range results {
		out = append(out, r)
	}
	return out
}

// LegalMoves returns every legal move player has on board. Candidates
// come from the move and attack enumerations plus special-move targets of
// each of player's pieces; the engine's full validation (including the
// self-check rule) decides which survive.
func (p *Pool) LegalMoves(board *engine.Board, player chess.Side) []Result {
	seen := make(map[Candidate]bool)
	var candidates []Candidate
	add := func(src, dst chess.Position) {
		cand := Candidate{Src: src, Dst: dst}
		if !seen[cand] {
			seen[cand] = true
			candidates = append(candidates, cand)
		}
	}

	for _, piece := range board.Pieces() {
		if piece.Side != player {
			continue
		}
		for _, dst := range board.PossibleMoves(piece, engine.ModeMove) {
			add(piece.Position, dst)
		}
		for _, dst := range board.PossibleMoves(piece, engine.ModeAttack) {
			add(piece.Position, dst)
		}
		for _, targets := range piece.SpecialMoves() {
			for _, dst := range targets {
				add(piece.Position, dst)
			}
		}
	}

	var legal []Result
	for _, r := range p.Evaluate(board, player, candidates) {
		if r.Err == nil {
			legal = append(legal, r)
		}
	}
	return legal
}
