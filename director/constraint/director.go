package constraint

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/textsweep/director/random"
	"github.com/they4kman/textsweep/game"
	"github.com/they4kman/textsweep/util/collections"
)

// Director flags and frees cells that the revealed numbers prove to be mines
// or safe, and guesses at random when nothing can be deduced.
type Director struct {
	Random random.Director

	field   *game.Field
	pending deque.Deque
}

func (director *Director) Init(field *game.Field) {
	director.field = field
	director.pending = deque.Deque{}
	director.Random.Init(field)
}

func (director *Director) Act() (game.Command, bool) {
	if director.pending.Len() == 0 {
		director.actDeliberate()
	}

	for director.pending.Len() > 0 {
		command := director.pending.PopFront().(game.Command)
		cell := director.field.CellAt(command.Index(director.field.Width()))

		// An earlier move may have revealed or flagged it already
		if cell.IsHidden() && !cell.IsFlagged() {
			return command, true
		}
	}

	game.Log.Debug("director found no safe move, guessing")
	return director.Random.Act()
}

// actDeliberate queues a move for every hidden cell whose content follows
// from a single revealed number.
func (director *Director) actDeliberate() {
	field := director.field
	queued := make(collections.Set[int])

	for idx := 0; idx < field.NumCells(); idx++ {
		origin := field.CellAt(idx)
		if origin.IsHidden() || origin.NumMines() == 0 {
			continue
		}

		unknown := make([]int, 0, 8)
		numFlagged := 0
		for _, neighbor := range collections.Sorted(field.Neighbors(idx)) {
			cell := field.CellAt(neighbor)
			switch {
			case cell.IsFlagged():
				numFlagged++
			case cell.IsHidden():
				unknown = append(unknown, neighbor)
			}
		}
		if len(unknown) == 0 {
			continue
		}

		var action game.Action
		switch origin.NumMines() {
		case numFlagged:
			action = game.Free
		case numFlagged + len(unknown):
			action = game.Mark
		default:
			continue
		}

		for _, neighbor := range unknown {
			if queued.Contains(neighbor) {
				continue
			}
			queued.Add(neighbor)
			director.pending.PushBack(field.Command(neighbor, action))
		}

		game.Log.WithFields(logrus.Fields{
			"origin": idx,
			"action": action,
			"cells":  len(unknown),
		}).Debug("deduced move")
	}
}
