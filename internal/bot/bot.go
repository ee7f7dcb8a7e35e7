// Package bot selects moves for the computer player with an exhaustive
// minimax search over the remaining game tree. On a 3x3 board the tree is
// small enough (at most 9! leaf paths from an empty board) to walk fully,
// so the returned move is optimal: the bot never loses, only wins or draws.
package bot

import (
	"github.com/whizdome/tic-tac-toe/internal/apperror"
	"github.com/whizdome/tic-tac-toe/internal/board"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// ChooseMove returns the optimal move for botMark on the given board,
// assuming the opponent also plays optimally. Candidate moves are scored
// in row-major order and ties are broken by first occurrence, which makes
// the bot fully deterministic. It must only be called on an in-progress
// board; calling it on a terminal board returns ErrNoAvailableMoves.
func ChooseMove(b *board.Board, botMark board.Mark) (board.Move, error) {
	if b.Status() != board.InProgress {
		return board.Move{}, apperror.ErrNoAvailableMoves
	}

	moves := b.AvailableMoves()
	if len(moves) == 0 {
		return board.Move{}, apperror.ErrNoAvailableMoves
	}

	bestMove := moves[0]
	bestScore := scoreLoss - 1

	for _, mv := range moves {
		next := b.Clone()
		if err := next.Place(mv, botMark); err != nil {
			return board.Move{}, err
		}

		// Strict comparison keeps the first row-major move among equals.
		if score := minimax(next, botMark.Opponent(), botMark); score > bestScore {
			bestScore = score
			bestMove = mv
		}
	}

	return bestMove, nil
}

// minimax scores the board from the bot's perspective: +1 when the bot has
// won, -1 when the opponent has won, 0 for a draw. Non-terminal boards are
// scored by recursing over every available move on a cloned board, taking
// the maximum when the bot is to move and the minimum otherwise.
func minimax(b *board.Board, toMove, botMark board.Mark) int {
	switch outcome := b.Status(); outcome {
	case board.InProgress:
	case board.Draw:
		return scoreDraw
	default:
		if outcome.Winner() == botMark {
			return scoreWin
		}
		return scoreLoss
	}

	maximizing := toMove == botMark

	best := scoreWin + 1
	if maximizing {
		best = scoreLoss - 1
	}

	for _, mv := range b.AvailableMoves() {
		next := b.Clone()
		if err := next.Place(mv, toMove); err != nil {
			continue
		}

		score := minimax(next, toMove.Opponent(), botMark)
		if maximizing && score > best {
			best = score
		}
		if !maximizing && score < best {
			best = score
		}
	}

	return best
}
