package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_IsValidMove(t *testing.T) {
	t.Run("Valid move on empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// Then: every in-range cell is a valid move
		assert.True(t, board.IsValidMove(0, 0))
		assert.True(t, board.IsValidMove(2, 2))
	})

	t.Run("Invalid move on occupied cell", func(t *testing.T) {
		// Given: a board with one mark
		board := NewBoard()
		require.True(t, board.ApplyMove(1, 1, PlayerX))

		// Then: the occupied cell is not a valid move
		assert.False(t, board.IsValidMove(1, 1))
	})

	t.Run("Out of range coordinates return false", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// Then: out-of-range coordinates, negative included, are invalid
		assert.False(t, board.IsValidMove(-1, 0))
		assert.False(t, board.IsValidMove(0, -1))
		assert.False(t, board.IsValidMove(3, 0))
		assert.False(t, board.IsValidMove(0, 3))
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Writes mark and returns true on valid move", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: applying a valid move
		ok := board.ApplyMove(0, 2, PlayerO)

		// Then: the mark is written
		require.True(t, ok)
		assert.Equal(t, PlayerO, board[0][2])
	})

	t.Run("Occupied cell leaves board unchanged", func(t *testing.T) {
		// Given: a board with X at (0, 0)
		board := NewBoard()
		require.True(t, board.ApplyMove(0, 0, PlayerX))
		snapshot := *board

		// When: O tries the same cell
		ok := board.ApplyMove(0, 0, PlayerO)

		// Then: the move is rejected and nothing changed
		assert.False(t, ok)
		assert.Equal(t, snapshot, *board)
	})

	t.Run("Out of range move leaves board unchanged", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		snapshot := *board

		// When: applying out-of-range moves
		// Then: every one is rejected and the board stays empty
		assert.False(t, board.ApplyMove(-1, 0, PlayerX))
		assert.False(t, board.ApplyMove(0, 5, PlayerX))
		assert.Equal(t, snapshot, *board)
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Row win", func(t *testing.T) {
		// Given: X occupying the top row
		board := &Board{
			{PlayerX, PlayerX, PlayerX},
			{EmptyCell, PlayerO, EmptyCell},
			{EmptyCell, PlayerO, EmptyCell},
		}

		// Then: X is the winner
		assert.Equal(t, PlayerX, board.Winner())
	})

	t.Run("Column win", func(t *testing.T) {
		// Given: O occupying the middle column
		board := &Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerO, PlayerX},
			{EmptyCell, PlayerO, EmptyCell},
		}

		// Then: O is the winner
		assert.Equal(t, PlayerO, board.Winner())
	})

	t.Run("Main diagonal win", func(t *testing.T) {
		// Given: X on the main diagonal
		board := &Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, PlayerO},
			{EmptyCell, EmptyCell, PlayerX},
		}

		// Then: X is the winner
		assert.Equal(t, PlayerX, board.Winner())
	})

	t.Run("Anti diagonal win", func(t *testing.T) {
		// Given: O on the anti diagonal
		board := &Board{
			{PlayerX, PlayerX, PlayerO},
			{EmptyCell, PlayerO, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
		}

		// Then: O is the winner
		assert.Equal(t, PlayerO, board.Winner())
	})

	t.Run("No winner", func(t *testing.T) {
		// Given: an ongoing position
		board := &Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// Then: nobody has won yet
		assert.Equal(t, EmptyCell, board.Winner())
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Ongoing game returns EmptyCell", func(t *testing.T) {
		// Given: a position with moves left and no winner
		board := &Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// Then: the game is still going
		assert.Equal(t, EmptyCell, board.Outcome())
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a full board with no three-in-a-row
		board := &Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		// Then: the outcome is a tie
		require.True(t, board.IsFull())
		assert.Equal(t, PlayerTie, board.Outcome())
	})

	t.Run("Winner takes precedence over full board", func(t *testing.T) {
		// Given: a full board where X has a line
		board := &Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
		}

		// Then: the outcome is the winner, not a tie
		assert.Equal(t, PlayerX, board.Outcome())
	})
}

func TestBoard_AvailableMoves(t *testing.T) {
	t.Run("Empty board lists all cells in row-major order", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: listing available moves
		moves := board.AvailableMoves()

		// Then: all nine cells come back, row by row
		expected := []Move{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		require.Equal(t, expected, moves)
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: a board with two marks
		board := NewBoard()
		require.True(t, board.ApplyMove(0, 1, PlayerX))
		require.True(t, board.ApplyMove(1, 1, PlayerO))

		// When: listing available moves
		moves := board.AvailableMoves()

		// Then: exactly the empty cells remain, still in row-major order
		expected := []Move{
			{0, 0}, {0, 2},
			{1, 0}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		require.Equal(t, expected, moves)
		assert.Len(t, moves, 7)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		// Given: a full board
		board := &Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		// Then: there is nothing left to play
		assert.Empty(t, board.AvailableMoves())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board mid-game
	board := NewBoard()
	require.True(t, board.ApplyMove(0, 0, PlayerX))
	require.True(t, board.ApplyMove(1, 1, PlayerO))

	// When: resetting it
	board.Reset()

	// Then: the board is empty again
	assert.True(t, board.IsEmpty())
	assert.Equal(t, *NewBoard(), *board)
}
