package board

import (
	"fmt"

	"github.com/whizdome/tic-tac-toe/internal/apperror"
)

const Size = 3

// Mark is the content of a single cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent returns the other side's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Move is a (row, column) coordinate pair, each in [0,2].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (mv Move) InRange() bool {
	return mv.Row >= 0 && mv.Row < Size && mv.Col >= 0 && mv.Col < Size
}

// Index maps the move onto the flat board array.
func (mv Move) Index() int {
	return mv.Row*Size + mv.Col
}

// Outcome is the derived state of a board.
type Outcome string

const (
	InProgress Outcome = "ongoing"
	WinX       Outcome = "X"
	WinO       Outcome = "O"
	Draw       Outcome = "-"
)

// Winner returns the winning mark, or Empty for InProgress and Draw.
func (o Outcome) Winner() Mark {
	switch o {
	case WinX:
		return X
	case WinO:
		return O
	default:
		return Empty
	}
}

// WinCombos lists the 8 winning lines as flat cell indexes:
// 3 rows, 3 columns, 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored as a flat array indexed by row*3+col.
// The zero value is an empty board ready to play.
type Board struct {
	cells [Size * Size]Mark
}

func New() *Board {
	return &Board{}
}

// Cell returns the mark at the given coordinates.
func (that *Board) Cell(mv Move) Mark {
	return that.cells[mv.Index()]
}

// Cells returns a snapshot of the grid in row-major order.
func (that *Board) Cells() [Size * Size]Mark {
	return that.cells
}

// Place puts mark into the cell addressed by mv. It fails with
// ErrInvalidMove when the coordinates are out of range or the cell is
// occupied, and never mutates the board on failure.
func (that *Board) Place(mv Move, mark Mark) error {
	if !mv.InRange() {
		return fmt.Errorf("%w: cell (%d,%d) is out of range", apperror.ErrInvalidMove, mv.Row, mv.Col)
	}

	if that.cells[mv.Index()] != Empty {
		return fmt.Errorf("%w: cell (%d,%d) is already occupied", apperror.ErrInvalidMove, mv.Row, mv.Col)
	}

	that.cells[mv.Index()] = mark

	return nil
}

// Status derives the outcome of the current grid by scanning the 8
// winning lines, declaring a draw when no cell is empty and no line is won.
func (that *Board) Status() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != Empty && a == b && b == c {
			if a == X {
				return WinX
			}
			return WinO
		}
	}

	for _, cell := range that.cells {
		if cell == Empty {
			return InProgress
		}
	}

	return Draw
}

// AvailableMoves returns every empty cell in row-major scan order.
// The order is part of the contract: it fixes the tie-break among
// equally scored moves in the selector.
func (that *Board) AvailableMoves() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, Move{Row: i / Size, Col: i % Size})
		}
	}

	return moves
}

// Clone returns an independent deep copy of the board.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}
