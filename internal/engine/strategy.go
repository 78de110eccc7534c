package engine

import "math/rand"

// Strategy picks the next move for a side. Implementations wrap the
// search rather than changing it: difficulty is a policy on top of
// BestMove, not a parameter inside it.
type Strategy interface {
	PickMove(board *Board) (Move, error)
}

type optimalStrategy struct {
	search *Minimax
}

// NewOptimalStrategy always plays the search's best move.
func NewOptimalStrategy(search *Minimax) Strategy {
	return &optimalStrategy{search: search}
}

func (that *optimalStrategy) PickMove(board *Board) (Move, error) {
	return that.search.BestMove(board)
}

type randomStrategy struct{}

// NewRandomStrategy plays a uniformly random legal move.
func NewRandomStrategy() Strategy {
	return &randomStrategy{}
}

func (that *randomStrategy) PickMove(board *Board) (Move, error) {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return Move{}, ErrNoAvailableMoves
	}

	return moves[rand.Intn(len(moves))], nil //nolint: gosec // it's ok
}

type mixedStrategy struct {
	optimal     Strategy
	random      Strategy
	optimalRate float64
}

// NewMixedStrategy plays the best move with probability optimalRate and
// a random legal move otherwise.
func NewMixedStrategy(search *Minimax, optimalRate float64) Strategy {
	return &mixedStrategy{
		optimal:     NewOptimalStrategy(search),
		random:      NewRandomStrategy(),
		optimalRate: optimalRate,
	}
}

func (that *mixedStrategy) PickMove(board *Board) (Move, error) {
	if rand.Float64() < that.optimalRate { //nolint: gosec // it's ok
		return that.optimal.PickMove(board)
	}

	return that.random.PickMove(board)
}
