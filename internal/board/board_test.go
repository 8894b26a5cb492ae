package board

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()

	b, err := Parse(s)
	require.NoError(t, err)

	return b
}

// reachable walks every board reachable from the empty board, stopping at
// terminal boards.
func reachable(visit func(Board)) {
	seen := map[Board]bool{}

	var walk func(b Board)
	walk = func(b Board) {
		if seen[b] {
			return
		}
		seen[b] = true
		visit(b)

		if b.IsTerminal() {
			return
		}

		for _, a := range b.LegalActions() {
			next, err := b.Apply(a)
			if err != nil {
				panic(err)
			}
			walk(next)
		}
	}

	walk(New())
}

func TestNew(t *testing.T) {
	// When: create a new board
	b := New()

	// Then: every cell is empty and X is to move
	assert.Equal(t, 9, b.Count(Empty))
	assert.Equal(t, X, b.CurrentPlayer())
	assert.Len(t, b.LegalActions(), 9)
	assert.False(t, b.IsTerminal())
	assert.Equal(t, InProgress, b.Outcome())
}

func TestBoard_CurrentPlayer(t *testing.T) {
	t.Run("X moves when counts are equal", func(t *testing.T) {
		// Given: a board with one X and one O
		b := mustParse(t, "X../.O./...")

		// Then: it is X's turn
		assert.Equal(t, X, b.CurrentPlayer())
	})

	t.Run("O moves when X has one more mark", func(t *testing.T) {
		// Given: a board with one X
		b := mustParse(t, ".../.../..X")

		// Then: it is O's turn
		assert.Equal(t, O, b.CurrentPlayer())
	})

	t.Run("Turns alternate along every reachable line of play", func(t *testing.T) {
		reachable(func(b Board) {
			for _, a := range b.LegalActions() {
				next, err := b.Apply(a)
				require.NoError(t, err)
				assert.Equal(t, b.CurrentPlayer().Opponent(), next.CurrentPlayer(), "board %s, action %s", b, a)
			}
		})
	})
}

func TestBoard_LegalActions(t *testing.T) {
	// Given: a board with three marks
	b := mustParse(t, "X.O/.X./...")

	// When: enumerating legal actions
	actions := b.LegalActions()

	// Then: every empty cell is listed in row-major order
	expected := []Action{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	assert.Equal(t, expected, actions)
}

func TestBoard_At(t *testing.T) {
	b := mustParse(t, "X../.O./...")

	assert.Equal(t, X, b.At(Action{Row: 0, Col: 0}))
	assert.Equal(t, O, b.At(Action{Row: 1, Col: 1}))
	assert.Equal(t, Empty, b.At(Action{Row: 2, Col: 2}))

	// cells outside the grid read as empty instead of panicking
	for _, a := range []Action{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
		assert.NotPanics(t, func() { b.At(a) }, a.String())
		assert.Equal(t, Empty, b.At(a), a.String())
	}
}

func TestBoard_Apply(t *testing.T) {
	t.Run("Places the current player's mark and keeps the input intact", func(t *testing.T) {
		// Given: a board where O is to move
		b := mustParse(t, "X../.../...")
		before := b

		// When: O plays the center
		next, err := b.Apply(Action{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the new board differs in exactly one cell and the input is unchanged
		assert.Equal(t, O, next.At(Action{Row: 1, Col: 1}))
		assert.Equal(t, before, b)
		assert.Equal(t, "X../.O./...", next.String())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where the corner is taken
		b := mustParse(t, "X../.../...")

		// When: O tries to play the same corner
		next, err := b.Apply(Action{Row: 0, Col: 0})

		// Then: ErrInvalidMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, b, next)
	})

	t.Run("Error on cell out of range", func(t *testing.T) {
		b := New()

		_, err := b.Apply(Action{Row: 3, Col: 0})
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		_, err = b.Apply(Action{Row: 0, Col: -1})
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Every occupied cell fails and every empty cell changes exactly one cell", func(t *testing.T) {
		reachable(func(b Board) {
			for row := range Size {
				for col := range Size {
					a := Action{Row: row, Col: col}
					next, err := b.Apply(a)

					if b.At(a) != Empty {
						require.ErrorIs(t, err, apperror.ErrInvalidMove)
						continue
					}

					require.NoError(t, err)
					assert.Equal(t, 1, diffCells(b, next))
					assert.Equal(t, b.CurrentPlayer(), next.At(a))
				}
			}
		})
	})
}

func diffCells(a, b Board) int {
	n := 0
	for row := range Size {
		for col := range Size {
			if a[row][col] != b[row][col] {
				n++
			}
		}
	}

	return n
}

func TestBoard_Winner(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		winner Mark
	}{
		{name: "Row", board: "XXX/OO./...", winner: X},
		{name: "Column", board: "XOX/XO./.O.", winner: O},
		{name: "Diagonal", board: "XO./OX./..X", winner: X},
		{name: "Anti-diagonal", board: "XXO/XO./O..", winner: O},
		{name: "No line", board: "XO./.X./..O", winner: Empty},
		{name: "Full board without a line", board: "XOX/XOO/OXX", winner: Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.board)

			assert.Equal(t, tt.winner, b.Winner())
		})
	}

	t.Run("No winner with fewer than three marks of a kind", func(t *testing.T) {
		reachable(func(b Board) {
			if w := b.Winner(); w != Empty {
				assert.GreaterOrEqual(t, b.Count(w), 3, "board %s", b)
			}
		})
	})
}

func TestBoard_IsTerminal(t *testing.T) {
	t.Run("Terminal boards", func(t *testing.T) {
		for _, s := range []string{"XXX/OO./...", "XO./XO./.OX", "XO./OX./..X", "XOX/XOO/OXX"} {
			assert.True(t, mustParse(t, s).IsTerminal(), s)
		}
	})

	t.Run("Terminal iff a winner exists or no action is left", func(t *testing.T) {
		reachable(func(b Board) {
			expected := b.Winner() != Empty || len(b.LegalActions()) == 0
			assert.Equal(t, expected, b.IsTerminal(), "board %s", b)
		})
	})
}

func TestBoard_Utility(t *testing.T) {
	assert.Equal(t, 1, mustParse(t, "XXX/OO./...").Utility())
	assert.Equal(t, -1, mustParse(t, "XO./XO./.OX").Utility())
	assert.Equal(t, 0, mustParse(t, "XOX/XOO/OXX").Utility())

	assert.Equal(t, XWins, mustParse(t, "XXX/OO./...").Outcome())
	assert.Equal(t, OWins, mustParse(t, "XO./XO./.OX").Outcome())
	assert.Equal(t, Draw, mustParse(t, "XOX/XOO/OXX").Outcome())
}

func TestParse(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		b := mustParse(t, "X.O/.X./..O")
		assert.Equal(t, "X.O/.X./..O", b.String())
	})

	t.Run("Rejects broken turn parity", func(t *testing.T) {
		_, err := Parse("OO./.../...")
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)

		_, err = Parse("XXX/.../...")
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects malformed text", func(t *testing.T) {
		for _, s := range []string{"", "XXX/...", "XX/.../...", "X?./.../..."} {
			_, err := Parse(s)
			require.ErrorIs(t, err, apperror.ErrInvalidBoard, s)
		}
	})
}

func TestActionFromCell(t *testing.T) {
	a, err := ActionFromCell(5)
	require.NoError(t, err)
	assert.Equal(t, Action{Row: 1, Col: 2}, a)
	assert.Equal(t, 5, a.Cell())

	_, err = ActionFromCell(9)
	require.ErrorIs(t, err, apperror.ErrInvalidMove)

	_, err = ActionFromCell(-1)
	require.ErrorIs(t, err, apperror.ErrInvalidMove)
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("O")
	require.NoError(t, err)
	assert.Equal(t, O, mark)
	assert.Equal(t, X, mark.Opponent())

	_, err = ParseMark("Z")
	require.ErrorIs(t, err, apperror.ErrInvalidMark)
}
