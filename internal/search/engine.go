package search

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
)

// The window passed to the root covers every terminal utility.
const (
	lossValue = -1
	winValue  = 1
)

// Result is the outcome of one search.
type Result struct {
	// Value is the game-theoretic value of the board from X's perspective.
	Value int
	// Action is the chosen move. It is meaningful only when Found is true.
	Action board.Action
	Found  bool

	Nodes   int
	Cutoffs int
}

// Engine picks moves with alpha-beta pruned minimax. It keeps no state
// between calls.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "search"),
	}
}

// BestMove returns an optimal action for the player to move, or false when
// the board is terminal. In a lost position every move has the same value and
// the first legal action in row-major order is returned; it is not chosen to
// delay the loss.
func (that *Engine) BestMove(b board.Board) (board.Action, bool) {
	result := that.Evaluate(b)

	return result.Action, result.Found
}

// Evaluate searches the full game tree below b.
func (that *Engine) Evaluate(b board.Board) Result {
	log := that.logger.With("method", "Evaluate", "board", b.String())

	if b.IsTerminal() {
		return Result{Value: b.Utility(), Nodes: 1}
	}

	s := &searcher{}

	var (
		value  int
		action board.Action
		found  bool
	)

	if b.CurrentPlayer() == board.X {
		value, action, found = s.maxValue(b, lossValue, winValue)
	} else {
		value, action, found = s.minValue(b, lossValue, winValue)
	}

	// No child beat the window edge, so every move scores the same forced
	// loss and any legal action is optimal.
	if !found {
		action = b.LegalActions()[0]
	}

	log.Debug("search finished",
		"player", b.CurrentPlayer().String(),
		"value", value,
		"action", action.String(),
		"nodes", s.nodes,
		"cutoffs", s.cutoffs,
	)

	return Result{
		Value:   value,
		Action:  action,
		Found:   true,
		Nodes:   s.nodes,
		Cutoffs: s.cutoffs,
	}
}

// searcher holds the counters of a single Evaluate call.
type searcher struct {
	nodes   int
	cutoffs int
}

// maxValue searches a board where X is to move. The running lower bound
// alpha is the returned value.
func (that *searcher) maxValue(b board.Board, alpha, beta int) (int, board.Action, bool) {
	that.nodes++

	if b.IsTerminal() {
		return b.Utility(), board.Action{}, false
	}

	var (
		best  board.Action
		found bool
	)

	for _, c := range that.children(b) {
		value, _, _ := that.minValue(c.board, alpha, beta)
		if value > alpha {
			alpha = value
			best, found = c.action, true
		}

		if alpha >= beta {
			that.cutoffs++
			break
		}
	}

	return alpha, best, found
}

// minValue searches a board where O is to move. The running upper bound
// beta is the returned value.
func (that *searcher) minValue(b board.Board, alpha, beta int) (int, board.Action, bool) {
	that.nodes++

	if b.IsTerminal() {
		return b.Utility(), board.Action{}, false
	}

	var (
		best  board.Action
		found bool
	)

	for _, c := range that.children(b) {
		value, _, _ := that.maxValue(c.board, alpha, beta)
		if value < beta {
			beta = value
			best, found = c.action, true
		}

		if alpha >= beta {
			that.cutoffs++
			break
		}
	}

	return beta, best, found
}

type child struct {
	action board.Action
	board  board.Board
}

// children expands b in row-major order, moving boards won by the mover to
// the front so an immediate win is always the move kept at a tie.
func (that *searcher) children(b board.Board) []child {
	actions := b.LegalActions()
	wins := make([]child, 0, len(actions))
	rest := make([]child, 0, len(actions))

	for _, action := range actions {
		// Apply cannot fail on an action taken from b.LegalActions.
		next, err := b.Apply(action)
		if err != nil {
			panic(err)
		}

		if next.Winner() != board.Empty {
			wins = append(wins, child{action: action, board: next})
			continue
		}

		rest = append(rest, child{action: action, board: next})
	}

	return append(wins, rest...)
}
