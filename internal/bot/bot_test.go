package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whizdome/tic-tac-toe/internal/apperror"
	"github.com/whizdome/tic-tac-toe/internal/board"
)

func TestChooseMove_Scenarios(t *testing.T) {
	t.Run("Empty board returns the first row-major optimal cell", func(t *testing.T) {
		// Given: an empty board with the bot playing X
		b := board.New()

		// When: the bot chooses its opening move
		mv, err := ChooseMove(b, board.X)

		// Then: every opening scores a draw under optimal play, so the
		// row-major tie-break picks (0,0)
		require.NoError(t, err)
		assert.Equal(t, board.Move{Row: 0, Col: 0}, mv)
	})

	t.Run("Completes the top row for an immediate win", func(t *testing.T) {
		// Given: X at (0,0) and (0,1), O at (1,0), X to move
		b := board.New()
		require.NoError(t, b.Place(board.Move{Row: 0, Col: 0}, board.X))
		require.NoError(t, b.Place(board.Move{Row: 0, Col: 1}, board.X))
		require.NoError(t, b.Place(board.Move{Row: 1, Col: 0}, board.O))

		// When: the bot chooses a move for X
		mv, err := ChooseMove(b, board.X)

		// Then: it takes (0,2) and wins on the spot
		require.NoError(t, err)
		assert.Equal(t, board.Move{Row: 0, Col: 2}, mv)

		require.NoError(t, b.Place(mv, board.X))
		assert.Equal(t, board.WinX, b.Status())
	})

	t.Run("Blocks the opponent's diagonal threat", func(t *testing.T) {
		// Given: X at (0,0) and (1,1), O at (0,1), O to move
		b := board.New()
		require.NoError(t, b.Place(board.Move{Row: 0, Col: 0}, board.X))
		require.NoError(t, b.Place(board.Move{Row: 1, Col: 1}, board.X))
		require.NoError(t, b.Place(board.Move{Row: 0, Col: 1}, board.O))

		// When: the bot chooses a move for O
		mv, err := ChooseMove(b, board.O)

		// Then: it blocks the diagonal at (2,2)
		require.NoError(t, err)
		assert.Equal(t, board.Move{Row: 2, Col: 2}, mv)
	})
}

func TestChooseMove_Deterministic(t *testing.T) {
	// Given: a fixed mid-game position
	b := board.New()
	require.NoError(t, b.Place(board.Move{Row: 1, Col: 1}, board.X))
	require.NoError(t, b.Place(board.Move{Row: 0, Col: 0}, board.O))

	// When: the move is chosen repeatedly
	first, err := ChooseMove(b, board.X)
	require.NoError(t, err)

	// Then: every call returns the same move
	for i := 0; i < 10; i++ {
		mv, err := ChooseMove(b, board.X)
		require.NoError(t, err)
		assert.Equal(t, first, mv)
	}
}

func TestChooseMove_TerminalBoard(t *testing.T) {
	t.Run("Error on a won board", func(t *testing.T) {
		// Given: a board already won by X
		b := board.New()
		require.NoError(t, b.Place(board.Move{Row: 0, Col: 0}, board.X))
		require.NoError(t, b.Place(board.Move{Row: 0, Col: 1}, board.X))
		require.NoError(t, b.Place(board.Move{Row: 0, Col: 2}, board.X))

		// When: a move is requested anyway
		_, err := ChooseMove(b, board.O)

		// Then: the contract violation is reported
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestSelfPlay_EndsInDrawWithinNineMoves(t *testing.T) {
	// Given: an empty board played bot-vs-bot
	b := board.New()
	turn := board.X

	// When: both sides play optimally until the game ends
	var plies int
	for b.Status() == board.InProgress {
		mv, err := ChooseMove(b, turn)
		require.NoError(t, err)
		require.NoError(t, b.Place(mv, turn))

		turn = turn.Opponent()
		plies++
		require.LessOrEqual(t, plies, 9)
	}

	// Then: the game is a draw after exactly nine moves
	assert.Equal(t, board.Draw, b.Status())
	assert.Equal(t, 9, plies)
}

func TestBotNeverLoses(t *testing.T) {
	// The bot replies optimally while the opponent branches over every
	// legal move. The bot must never reach a board the opponent has won.
	t.Run("Bot as X", func(t *testing.T) {
		playAllGames(t, board.New(), board.X, board.X)
	})

	t.Run("Bot as O", func(t *testing.T) {
		playAllGames(t, board.New(), board.X, board.O)
	})
}

func playAllGames(t *testing.T, b *board.Board, turn, botMark board.Mark) {
	t.Helper()

	switch outcome := b.Status(); outcome {
	case board.InProgress:
	default:
		require.NotEqual(t, botMark.Opponent(), outcome.Winner(),
			"opponent won: %v", b.Cells())
		return
	}

	if turn == botMark {
		mv, err := ChooseMove(b, botMark)
		require.NoError(t, err)

		next := b.Clone()
		require.NoError(t, next.Place(mv, botMark))
		playAllGames(t, next, turn.Opponent(), botMark)
		return
	}

	for _, mv := range b.AvailableMoves() {
		next := b.Clone()
		require.NoError(t, next.Place(mv, turn))
		playAllGames(t, next, turn.Opponent(), botMark)
	}
}
