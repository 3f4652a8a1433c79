package console

import (
	"ctchen222/tictactoe-console/internal/game"
	"fmt"
	"io"
	"strconv"
)

// RenderBoard writes the grid to w. Empty cells show their 1-9 label.
func RenderBoard(w io.Writer, board game.Board) {
	fmt.Fprintln(w)
	for row := range 3 {
		if row > 0 {
			fmt.Fprintln(w, "---+---+---")
		}
		fmt.Fprintf(w, " %s | %s | %s \n",
			cellLabel(board, row*3),
			cellLabel(board, row*3+1),
			cellLabel(board, row*3+2),
		)
	}
	fmt.Fprintln(w)
}

func cellLabel(board game.Board, index int) string {
	if board[index] == game.None {
		return strconv.Itoa(index + 1)
	}
	return string(board[index])
}
