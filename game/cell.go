package game

import (
	"fmt"
	"strconv"
)

type Cell struct {
	idx      int
	numMines int

	isMine, isHidden, isFlagged bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%d)", cell.idx)
}

// Marker returns the single rune used to draw the cell on the board
func (cell *Cell) Marker() rune {
	switch {
	case cell.isFlagged:
		return FlagMarker
	case cell.isHidden:
		return HiddenMarker
	case cell.isMine:
		return MineMarker
	case cell.numMines == 0:
		return EmptyMarker
	default:
		return []rune(strconv.Itoa(cell.numMines))[0]
	}
}

func (cell *Cell) Index() int {
	return cell.idx
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsHidden() bool {
	return cell.isHidden
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

func (cell *Cell) NumMines() int {
	return cell.numMines
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.isMine:
		switch {
		case cell.isFlagged:
			return 'F'
		case cell.isHidden:
			return 'O'
		default:
			return 'X'
		}
	case cell.isFlagged:
		return 'f'
	case cell.isHidden:
		return '#'
	default:
		return '.'
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	cell.isMine = false
	cell.isHidden = true
	cell.isFlagged = false

	switch c {
	case 'O', 'X', 'F':
		cell.isMine = true
		switch c {
		case 'X':
			cell.isHidden = fresh
		case 'F':
			cell.isFlagged = !fresh
		}
	case 'f':
		cell.isFlagged = !fresh
	case '.':
		cell.isHidden = fresh
	case '#':
	default:
		return false
	}

	return true
}

func (cell *Cell) unhide() {
	cell.isHidden = false
	cell.isFlagged = false
}

func (cell *Cell) toggleFlagged() {
	cell.isFlagged = !cell.isFlagged
}
