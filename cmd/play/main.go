package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

type tally struct {
	human, bot, draws int
}

func main() {
	difficulty := flag.String("difficulty", "hard", "bot difficulty: easy, medium or hard")
	flag.Parse()

	search := engine.NewMinimax(engine.PlayerO, engine.PlayerX)
	strategy := strategyFor(*difficulty, search)

	fmt.Printf("You are %s, the bot is %s. Enter moves as \"row col\" (0-2).\n", engine.PlayerX, engine.PlayerO)

	reader := bufio.NewScanner(os.Stdin)
	scores := tally{}

	for {
		playRound(reader, strategy, &scores)

		fmt.Printf("Score — you: %d, bot: %d, draws: %d\n", scores.human, scores.bot, scores.draws)
		fmt.Print("Play again? (y/n): ")

		if !reader.Scan() || !strings.EqualFold(strings.TrimSpace(reader.Text()), "y") {
			return
		}
	}
}

func playRound(reader *bufio.Scanner, strategy engine.Strategy, scores *tally) {
	board := engine.NewBoard()
	printBoard(board)

	turn := engine.PlayerX
	for board.Outcome() == engine.EmptyCell {
		if turn == engine.PlayerX {
			row, col := readMove(reader, board)
			board.ApplyMove(row, col, engine.PlayerX)
		} else {
			move, err := strategy.PickMove(board)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bot failed to move: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("Bot plays (%d, %d)\n", move.Row, move.Col)
			board.ApplyMove(move.Row, move.Col, engine.PlayerO)
		}

		turn = toggle(turn)
		printBoard(board)
	}

	switch board.Outcome() {
	case engine.PlayerX:
		fmt.Println("You won!")
		scores.human++
	case engine.PlayerO:
		fmt.Println("The bot won.")
		scores.bot++
	default:
		fmt.Println("It's a draw.")
		scores.draws++
	}
}

func readMove(reader *bufio.Scanner, board *engine.Board) (int, int) {
	for {
		fmt.Print("Your move: ")
		if !reader.Scan() {
			os.Exit(0)
		}

		var row, col int
		if _, err := fmt.Sscanf(strings.TrimSpace(reader.Text()), "%d %d", &row, &col); err != nil {
			fmt.Println("Enter two numbers between 0 and 2, e.g.: 1 1")
			continue
		}

		if !board.IsValidMove(row, col) {
			fmt.Println("That cell is occupied or out of bounds.")
			continue
		}

		return row, col
	}
}

func printBoard(board *engine.Board) {
	fmt.Println("   0   1   2")
	for row := 0; row < engine.Size; row++ {
		cells := make([]string, engine.Size)
		for col := 0; col < engine.Size; col++ {
			cells[col] = board[row][col]
			if cells[col] == engine.EmptyCell {
				cells[col] = " "
			}
		}

		fmt.Printf("%d  %s\n", row, strings.Join(cells, " | "))
		if row < engine.Size-1 {
			fmt.Println("  -----------")
		}
	}
}

func strategyFor(difficulty string, search *engine.Minimax) engine.Strategy {
	switch difficulty {
	case "easy":
		return engine.NewRandomStrategy()
	case "medium":
		return engine.NewMixedStrategy(search, 0.7)
	default:
		return engine.NewOptimalStrategy(search)
	}
}

func toggle(mark string) string {
	if mark == engine.PlayerX {
		return engine.PlayerO
	}
	return engine.PlayerX
}
