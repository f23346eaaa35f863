package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/textsweep/game"
	"github.com/they4kman/textsweep/util/collections"
)

// Director reveals hidden, unflagged cells in a random order
type Director struct {
	// Seed for the reveal order; zero picks one from the clock
	Seed int64

	field     *game.Field
	order     []int
	remaining collections.Set[int]
}

func (director *Director) Init(field *game.Field) {
	seed := director.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	director.field = field
	director.order = rand.New(rand.NewSource(seed)).Perm(field.NumCells())
	director.remaining = collections.NewSet(director.order...)
}

func (director *Director) Act() (game.Command, bool) {
	for _, idx := range director.order {
		if !director.remaining.Contains(idx) {
			continue
		}

		cell := director.field.CellAt(idx)
		if !cell.IsHidden() {
			director.remaining.Remove(idx)
			continue
		}
		if cell.IsFlagged() {
			continue
		}

		director.remaining.Remove(idx)
		return director.field.Command(idx, game.Free), true
	}

	return game.Command{}, false
}
