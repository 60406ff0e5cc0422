package tictactoe

import "github.com/rocketscienceinc/tictactoe-stats/internal/entity"

// Lines - enumerates the 2N+2 winning lines of a size×size board as cell indexes:
// rows top to bottom, columns left to right, the main diagonal, then the anti-diagonal.
func Lines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)

	for r := range size {
		line := make([]int, size)
		for c := range size {
			line[c] = r*size + c
		}
		lines = append(lines, line)
	}

	for c := range size {
		line := make([]int, size)
		for r := range size {
			line[r] = r*size + c
		}
		lines = append(lines, line)
	}

	mainDiagonal := make([]int, size)
	antiDiagonal := make([]int, size)
	for i := range size {
		mainDiagonal[i] = i*size + i
		antiDiagonal[i] = i*size + (size - 1 - i)
	}

	return append(lines, mainDiagonal, antiDiagonal)
}

// DetermineOutcome - scans the whole board. Returns the first winning mark in Lines order,
// PlayerTie for a full board without a winner and EmptyCell while the game goes on.
func DetermineOutcome(board entity.Board) entity.Mark {
	for _, line := range Lines(board.Size) {
		first := board.Cells[line[0]]
		if first == entity.EmptyCell {
			continue
		}

		uniform := true
		for _, idx := range line[1:] {
			if board.Cells[idx] != first {
				uniform = false
				break
			}
		}

		if uniform {
			return first
		}
	}

	if board.IsFull() {
		return entity.PlayerTie
	}

	return entity.EmptyCell
}
