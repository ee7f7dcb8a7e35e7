package usecase

import (
	"fmt"

	"github.com/whizdome/tic-tac-toe/internal/apperror"
	"github.com/whizdome/tic-tac-toe/internal/bot"
	"github.com/whizdome/tic-tac-toe/internal/board"
)

// Session is one round of tic tac toe as seen by a driver: the board,
// whose turn it is, and optionally which side the computer plays.
// Turn alternation lives here, not in the board itself.
type Session struct {
	ID      string
	BotMark board.Mark // Empty when two humans share the board

	b       *board.Board
	turn    board.Mark
	outcome board.Outcome
}

// NewSession starts a fresh round. X always moves first; pass botMark as
// board.Empty for a human-vs-human round.
func NewSession(id string, botMark board.Mark) *Session {
	return &Session{
		ID:      id,
		BotMark: botMark,
		b:       board.New(),
		turn:    board.X,
		outcome: board.InProgress,
	}
}

// Cells returns the grid in row-major order for rendering.
func (that *Session) Cells() [board.Size * board.Size]board.Mark {
	return that.b.Cells()
}

func (that *Session) Turn() board.Mark {
	return that.turn
}

func (that *Session) Outcome() board.Outcome {
	return that.outcome
}

// IsBotTurn reports whether the computer is the side to move.
func (that *Session) IsBotTurn() bool {
	return that.outcome == board.InProgress && that.BotMark != board.Empty && that.turn == that.BotMark
}

// MakeTurn applies a move for mark, rejecting moves out of turn or after
// the round has finished. Invalid cells surface the board's ErrInvalidMove
// unchanged, so the driver can re-prompt.
func (that *Session) MakeTurn(mark board.Mark, mv board.Move) error {
	if that.outcome != board.InProgress {
		return apperror.ErrGameFinished
	}

	if mark != that.turn {
		return apperror.ErrNotYourTurn
	}

	if err := that.b.Place(mv, mark); err != nil {
		return err
	}

	if that.outcome = that.b.Status(); that.outcome == board.InProgress {
		that.turn = that.turn.Opponent()
	}

	return nil
}

// BotTurn asks the move selector for the computer's move and applies it.
func (that *Session) BotTurn() (board.Move, error) {
	if !that.IsBotTurn() {
		return board.Move{}, apperror.ErrNotYourTurn
	}

	mv, err := bot.ChooseMove(that.b, that.BotMark)
	if err != nil {
		return board.Move{}, fmt.Errorf("failed to choose bot move: %w", err)
	}

	if err = that.MakeTurn(that.BotMark, mv); err != nil {
		return board.Move{}, fmt.Errorf("failed to apply bot move: %w", err)
	}

	return mv, nil
}

// Reset discards the board and starts a new round with the same setup.
func (that *Session) Reset() {
	that.b = board.New()
	that.turn = board.X
	that.outcome = board.InProgress
}
