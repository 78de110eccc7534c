package engine

import (
	"errors"
	"math"
)

const (
	winScore  = 10
	lossScore = -10
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Minimax explores the full remaining game tree with alpha-beta pruning
// and picks the move that maximizes the guaranteed outcome for its side.
// It holds nothing but the two marks and can be reused across games.
type Minimax struct {
	maximizer string
	minimizer string
}

// NewMinimax returns a search that maximizes for maximizer (the bot)
// and assumes minimizer (the opponent) plays optimally against it.
func NewMinimax(maximizer, minimizer string) *Minimax {
	return &Minimax{
		maximizer: maximizer,
		minimizer: minimizer,
	}
}

// EvaluateTerminal scores a finished board: +10 if the maximizing side
// won, -10 if the minimizing side won, 0 for a tie.
func (that *Minimax) EvaluateTerminal(board *Board) int {
	switch board.Winner() {
	case that.maximizer:
		return winScore
	case that.minimizer:
		return lossScore
	default:
		return 0
	}
}

// Score returns the minimax value of the board for the side indicated
// by maximizing, assuming optimal play from both sides. Pruning bounds
// start fresh at every top-level call; root candidates in BestMove do
// not share them.
func (that *Minimax) Score(board *Board, depth int, maximizing bool) int {
	return that.score(board, depth, maximizing, math.MinInt, math.MaxInt)
}

func (that *Minimax) score(board *Board, depth int, maximizing bool, alpha, beta int) int {
	if board.Outcome() != EmptyCell {
		return biasByDepth(that.EvaluateTerminal(board), depth)
	}

	if maximizing {
		best := math.MinInt

		for _, move := range board.AvailableMoves() {
			board[move.Row][move.Col] = that.maximizer
			value := that.score(board, depth+1, false, alpha, beta)
			board[move.Row][move.Col] = EmptyCell

			best = max(best, value)

			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt

	for _, move := range board.AvailableMoves() {
		board[move.Row][move.Col] = that.minimizer
		value := that.score(board, depth+1, true, alpha, beta)
		board[move.Row][move.Col] = EmptyCell

		best = min(best, value)

		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}

	return best
}

// BestMove returns the strongest move for the maximizing side. Moves
// are tried in row-major order and only a strictly better score
// replaces the incumbent, so ties go to the earliest cell. Returns
// ErrNoAvailableMoves on a full board.
func (that *Minimax) BestMove(board *Board) (Move, error) {
	// The empty board always searches to the same answer; skip the
	// most expensive call of the game and open in the center.
	if board.IsEmpty() {
		return Move{Row: Size / 2, Col: Size / 2}, nil
	}

	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return Move{}, ErrNoAvailableMoves
	}

	bestScore := math.MinInt
	bestMove := moves[0]

	for _, move := range moves {
		board[move.Row][move.Col] = that.maximizer
		moveScore := that.Score(board, 1, false)
		board[move.Row][move.Col] = EmptyCell

		if moveScore > bestScore {
			bestScore = moveScore
			bestMove = move
		}
	}

	return bestMove, nil
}

// biasByDepth nudges terminal scores so the search prefers the fastest
// win and the slowest loss among equal outcomes.
func biasByDepth(score, depth int) int {
	switch {
	case score > 0:
		return score - depth
	case score < 0:
		return score + depth
	default:
		return 0
	}
}
