package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/textsweep/util/collections"
)

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell)

// flood visits cell, then spreads breadth-first through every visited cell
// with no neighbouring mines. Each cell is visited at most once.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(collections.Set[int])
	var visitQueue deque.Deque

	enqueue := func(cell *Cell) {
		// Don't visit, if already visited
		if visited.Contains(cell.idx) {
			return
		}

		visited.Add(cell.idx)
		visitQueue.PushBack(cell)
	}

	enqueue(cell)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		visit(cell)

		if cell.numMines == 0 {
			for _, neighbor := range getNeighbors(cell) {
				enqueue(neighbor)
			}
		}
	}
}
