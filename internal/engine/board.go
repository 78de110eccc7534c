package engine

// Size is the side length of the board.
const Size = 3

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Move is a board coordinate, both components in [0, Size).
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a Size×Size grid of marks. The zero value is an empty board.
type Board [Size][Size]string

func NewBoard() *Board {
	return &Board{}
}

// IsValidMove reports whether (row, col) is on the board and empty.
// Out-of-range coordinates, including negative ones, return false.
func (that *Board) IsValidMove(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}

	return that[row][col] == EmptyCell
}

// ApplyMove writes the mark if the move is valid and reports whether it
// did. An invalid move leaves the board unchanged; it is a normal
// outcome, not an error.
func (that *Board) ApplyMove(row, col int, mark string) bool {
	if !that.IsValidMove(row, col) {
		return false
	}

	that[row][col] = mark

	return true
}

// Winner returns the mark occupying a complete line, checking rows,
// then columns, then the two diagonals, or EmptyCell if there is none.
func (that *Board) Winner() string {
	for row := 0; row < Size; row++ {
		if that[row][0] != EmptyCell && that[row][0] == that[row][1] && that[row][1] == that[row][2] {
			return that[row][0]
		}
	}

	for col := 0; col < Size; col++ {
		if that[0][col] != EmptyCell && that[0][col] == that[1][col] && that[1][col] == that[2][col] {
			return that[0][col]
		}
	}

	if that[0][0] != EmptyCell && that[0][0] == that[1][1] && that[1][1] == that[2][2] {
		return that[0][0]
	}

	if that[0][2] != EmptyCell && that[0][2] == that[1][1] && that[1][1] == that[2][0] {
		return that[0][2]
	}

	return EmptyCell
}

func (that *Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Outcome returns the winner's mark, PlayerTie when the board is full
// with no winner, or EmptyCell while the game is still going.
func (that *Board) Outcome() string {
	if winner := that.Winner(); winner != EmptyCell {
		return winner
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// AvailableMoves returns the empty cells in row-major order. The order
// is load-bearing: it fixes the search's tie-breaking.
func (that *Board) AvailableMoves() []Move {
	moves := make([]Move, 0, Size*Size)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// IsEmpty reports whether no mark has been placed yet.
func (that *Board) IsEmpty() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] != EmptyCell {
				return false
			}
		}
	}

	return true
}

// Reset clears the board in place for a new round.
func (that *Board) Reset() {
	*that = Board{}
}
