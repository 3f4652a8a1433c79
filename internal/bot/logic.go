package bot

import (
	"ctchen222/tictactoe-console/internal/game"
	"math"
	"math/rand/v2"
)

// Scores are depth-independent: a fast win is worth the same as a slow one.
const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

// tier names the rule that produced a move.
type tier string

const (
	tierWin    tier = "win"
	tierBlock  tier = "block"
	tierSearch tier = "search"
	tierRandom tier = "random"
)

// easyMove makes a completely random move. The board must have an empty cell.
func easyMove(board game.Board, rng *rand.Rand) int {
	availableMoves := board.EmptyCells()
	return availableMoves[rng.IntN(len(availableMoves))]
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func mediumMove(board game.Board, rng *rand.Rand, botMark, opponentMark game.PlayerMark) (int, tier) {
	// 1. Win: Check if the bot can win in the next move
	if move, canWin := findWinningMove(board, botMark); canWin {
		return move, tierWin
	}

	// 2. Block: Check if the opponent is about to win and block them
	if move, canBlock := findWinningMove(board, opponentMark); canBlock {
		return move, tierBlock
	}

	// 3. Random: Otherwise, make a random move
	return easyMove(board, rng), tierRandom
}

// hardMove plays perfectly: win, block, otherwise the first move with the best minimax score.
func hardMove(board game.Board, botMark, opponentMark game.PlayerMark) (move int, t tier, nodes int) {
	// 1. Win: Check if the bot can win in the next move
	if move, canWin := findWinningMove(board, botMark); canWin {
		return move, tierWin, 0
	}

	// 2. Block: Check if the opponent is about to win and block them
	if move, canBlock := findWinningMove(board, opponentMark); canBlock {
		return move, tierBlock, 0
	}

	// 3. Search: Score every move with a full minimax
	s := &searcher{ai: botMark, human: opponentMark}
	return s.bestMove(board), tierSearch, s.nodes
}

// findWinningMove returns the lowest empty cell that completes a line for mark.
func findWinningMove(board game.Board, mark game.PlayerMark) (int, bool) {
	for _, m := range board.EmptyCells() {
		won := withMark(board, m, mark, func() bool {
			return board.Outcome().IsWin(mark)
		})
		if won {
			return m, true
		}
	}
	return -1, false
}

// withMark sets board[index] to mark while fn runs and restores the previous value on return.
func withMark[T any](board game.Board, index int, mark game.PlayerMark, fn func() T) T {
	prev := board[index]
	board[index] = mark
	defer func() { board[index] = prev }()
	return fn()
}

// searcher runs minimax from the point of view of ai. nodes counts visited positions.
type searcher struct {
	ai, human game.PlayerMark
	nodes     int
}

// bestMove returns the first move, in ascending order, that reaches the maximum score.
func (s *searcher) bestMove(board game.Board) int {
	bestScore, bestMove := math.MinInt, -1
	for _, m := range board.EmptyCells() {
		score := withMark(board, m, s.ai, func() int {
			return s.minimax(board, false)
		})
		if score > bestScore {
			bestScore, bestMove = score, m
		}
	}
	return bestMove
}

func (s *searcher) minimax(board game.Board, maximizing bool) int {
	s.nodes++

	outcome := board.Outcome()
	switch {
	case outcome.IsWin(s.ai):
		return winScore
	case outcome.IsWin(s.human):
		return lossScore
	case outcome.Status == game.StatusDraw:
		return drawScore
	}

	if maximizing {
		best := math.MinInt
		for _, m := range board.EmptyCells() {
			best = max(best, withMark(board, m, s.ai, func() int {
				return s.minimax(board, false)
			}))
		}
		return best
	}

	best := math.MaxInt
	for _, m := range board.EmptyCells() {
		best = min(best, withMark(board, m, s.human, func() int {
			return s.minimax(board, true)
		}))
	}
	return best
}
