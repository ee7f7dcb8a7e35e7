// Package cli is the terminal driver: it reads moves from an input stream,
// renders the grid as text, and loops for new rounds. All rules live in the
// session and board packages; this package only does I/O.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/whizdome/tic-tac-toe/internal/apperror"
	"github.com/whizdome/tic-tac-toe/internal/board"
	"github.com/whizdome/tic-tac-toe/internal/usecase"
)

type Runner struct {
	logger  *slog.Logger
	botMark board.Mark

	in  *bufio.Scanner
	out io.Writer
}

// New builds a runner reading from in and writing to out. botMark is the
// side the computer takes when the player opts in to play against it.
func New(logger *slog.Logger, botMark board.Mark, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		logger:  logger.With("component", "cli"),
		botMark: botMark,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the prompt loop until the player declines a new round or the
// input stream ends.
func (that *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(that.out, "=== Tic Tac Toe ===")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		againstBot, err := that.askYesNo("Do you want to play against the computer? (yes/no): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		botMark := board.Empty
		if againstBot {
			botMark = that.botMark
		}

		sess := usecase.NewSession(uuid.NewString(), botMark)

		if err = that.playRound(ctx, sess); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		that.logger.Info("round finished", "session", sess.ID, "outcome", sess.Outcome())

		again, err := that.askYesNo("Play again? (yes/no): ")
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			fmt.Fprintln(that.out, "Thanks for playing!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (that *Runner) playRound(ctx context.Context, sess *usecase.Session) error {
	that.renderBoard(sess)

	for sess.Outcome() == board.InProgress {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if sess.IsBotTurn() {
			mv, err := sess.BotTurn()
			if err != nil {
				return fmt.Errorf("bot turn failed: %w", err)
			}
			fmt.Fprintf(that.out, "Computer plays: %d %d\n", mv.Row, mv.Col)
		} else if err := that.humanTurn(sess); err != nil {
			return err
		}

		that.renderBoard(sess)
	}

	switch outcome := sess.Outcome(); outcome {
	case board.Draw:
		fmt.Fprintln(that.out, "It's a tie!")
	default:
		fmt.Fprintf(that.out, "%s wins!\n", outcome.Winner())
	}

	return nil
}

// humanTurn prompts until a legal move is applied.
func (that *Runner) humanTurn(sess *usecase.Session) error {
	for {
		fmt.Fprintf(that.out, "%s's turn. Enter row and column (0-2, space separated): ", sess.Turn())

		line, err := that.readLine()
		if err != nil {
			return err
		}

		mv, ok := parseMove(line)
		if !ok {
			fmt.Fprintln(that.out, "Invalid input! Please enter two numbers between 0-2 separated by a space.")
			continue
		}

		if err = sess.MakeTurn(sess.Turn(), mv); err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) {
				fmt.Fprintln(that.out, "That cell is not available, try again.")
				continue
			}
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	}
}

func (that *Runner) askYesNo(prompt string) (bool, error) {
	for {
		fmt.Fprint(that.out, prompt)

		line, err := that.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}

		fmt.Fprintln(that.out, "Please enter 'yes' or 'no'.")
	}
}

func (that *Runner) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return that.in.Text(), nil
}

func (that *Runner) renderBoard(sess *usecase.Session) {
	cells := sess.Cells()

	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, "     0   1   2")
	fmt.Fprintln(that.out, "   +---+---+---+")
	for row := 0; row < board.Size; row++ {
		fmt.Fprintf(that.out, " %d |", row)
		for col := 0; col < board.Size; col++ {
			mark := cells[row*board.Size+col]
			if mark == board.Empty {
				mark = " "
			}
			fmt.Fprintf(that.out, " %s |", mark)
		}
		fmt.Fprintln(that.out)
		fmt.Fprintln(that.out, "   +---+---+---+")
	}
	fmt.Fprintln(that.out)
}

// parseMove parses a "row col" pair; range checking is left to the board.
func parseMove(line string) (board.Move, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return board.Move{}, false
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Move{}, false
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.Move{}, false
	}

	return board.Move{Row: row, Col: col}, true
}
