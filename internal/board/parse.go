package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Parse reads a board in the format produced by Board.String. Boards that
// break turn parity are rejected.
func Parse(s string) (Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidBoard, Size, len(rows))
	}

	var b Board
	for i, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, i, len(row))
		}

		for j := range Size {
			switch row[j] {
			case 'X', 'x':
				b[i][j] = X
			case 'O', 'o':
				b[i][j] = O
			case '.', '-', ' ':
				b[i][j] = Empty
			default:
				return Board{}, fmt.Errorf("%w: unexpected %q at row %d", apperror.ErrInvalidBoard, row[j], i)
			}
		}
	}

	if err := b.Validate(); err != nil {
		return Board{}, err
	}

	return b, nil
}

// Validate checks the turn parity invariant: X has as many marks as O or
// exactly one more.
func (that Board) Validate() error {
	diff := that.Count(X) - that.Count(O)
	if diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidBoard, that.Count(X), that.Count(O))
	}

	return nil
}
