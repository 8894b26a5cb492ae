package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const Size = 3

// lines lists every three-in-a-row in scan order: rows, columns, diagonals.
var lines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Action identifies a cell by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ActionFromCell - converts a flat 0..8 cell index into an Action.
func ActionFromCell(cell int) (Action, error) {
	if cell < 0 || cell >= Size*Size {
		return Action{}, fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	return Action{Row: cell / Size, Col: cell % Size}, nil
}

// Cell returns the flat 0..8 index of the action.
func (that Action) Cell() int {
	return that.Row*Size + that.Col
}

func (that Action) inRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Outcome is the state of the game derived from a board.
type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Board is a 3x3 grid. It is a value: Apply returns a new Board and never
// changes the one it was called on.
type Board [Size][Size]Mark

// New returns the empty starting board.
func New() Board {
	return Board{}
}

// At returns the mark at the given cell. Cells outside the grid read as Empty.
func (that Board) At(a Action) Mark {
	if !a.inRange() {
		return Empty
	}

	return that[a.Row][a.Col]
}

// Count returns the number of cells holding the given mark.
func (that Board) Count(mark Mark) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				n++
			}
		}
	}

	return n
}

// CurrentPlayer returns whose turn it is. X moves first.
func (that Board) CurrentPlayer() Mark {
	if that.Count(X) == that.Count(O) {
		return X
	}

	return O
}

// LegalActions returns every empty cell in row-major order.
func (that Board) LegalActions() []Action {
	actions := make([]Action, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Apply places the current player's mark on the given cell.
func (that Board) Apply(a Action) (Board, error) {
	if !a.inRange() {
		return that, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, a)
	}

	if that.At(a) != Empty {
		return that, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, a)
	}

	next := that
	next[a.Row][a.Col] = that.CurrentPlayer()

	return next, nil
}

// Winner returns the mark of the first complete line, or Empty.
func (that Board) Winner() Mark {
	for _, line := range lines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

func (that Board) IsFull() bool {
	return that.Count(Empty) == 0
}

// IsTerminal reports whether the game is over.
func (that Board) IsTerminal() bool {
	return that.Winner() != Empty || that.IsFull()
}

// Utility scores a finished board from X's perspective: +1, -1 or 0.
func (that Board) Utility() int {
	switch that.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

func (that Board) Outcome() Outcome {
	switch that.Winner() {
	case X:
		return XWins
	case O:
		return OWins
	}

	if that.IsFull() {
		return Draw
	}

	return InProgress
}

// String renders the board as three rows separated by '/', using '.' for
// empty cells, e.g. "X.O/.X./..O".
func (that Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('/')
		}

		for col := range Size {
			switch that[row][col] {
			case X:
				sb.WriteByte('X')
			case O:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
