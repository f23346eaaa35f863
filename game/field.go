package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/textsweep/util/collections"
)

type Field struct {
	width, height int // in number of cells
	numMines      int
	cells         []Cell

	status      Status
	minesPlaced bool
	numHidden   int
}

type FieldConfig struct {
	Width, Height int
	NumMines      int

	// Seed for mine placement; zero picks one from the clock
	Seed int64
}

// NewField creates a width×height field with numMines randomly placed mines.
// The mines are not final until the first Reveal.
func NewField(width, height, numMines int) (*Field, error) {
	return FieldConfig{Width: width, Height: height, NumMines: numMines}.CreateField()
}

func (config FieldConfig) validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", config.Width, config.Height)
	}
	if config.NumMines < 0 || config.NumMines >= config.Width*config.Height {
		return errors.Wrapf(ErrInvalidMineCount,
			"%d mines on %d cells", config.NumMines, config.Width*config.Height)
	}
	return nil
}

func (config FieldConfig) CreateField() (*Field, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	field := createField(config.Width, config.Height, config.NumMines)

	// Shuffle cell indexes and fill the first numMines of them with mines
	cellIndexes := rnd.Perm(len(field.cells))
	for _, cellIdx := range cellIndexes[:config.NumMines] {
		field.cells[cellIdx].isMine = true
	}

	Log.WithFields(logrus.Fields{
		"width":  config.Width,
		"height": config.Height,
		"mines":  config.NumMines,
		"seed":   seed,
	}).Debug("created field")

	return field, nil
}

func createField(width, height, numMines int) *Field {
	field := &Field{
		width:     width,
		height:    height,
		numMines:  numMines,
		cells:     make([]Cell, width*height),
		status:    InProgress,
		numHidden: width * height,
	}

	for idx := range field.cells {
		field.cells[idx] = Cell{idx: idx, isHidden: true}
	}

	return field
}

func (field *Field) Width() int {
	return field.width
}

func (field *Field) Height() int {
	return field.height
}

func (field *Field) NumCells() int {
	return len(field.cells)
}

func (field *Field) NumMines() int {
	return field.numMines
}

func (field *Field) NumFlags() int {
	numFlags := 0
	for idx := range field.cells {
		if field.cells[idx].isFlagged {
			numFlags++
		}
	}
	return numFlags
}

func (field *Field) Status() Status {
	return field.status
}

// MinesPlaced reports whether mine positions are final
func (field *Field) MinesPlaced() bool {
	return field.minesPlaced
}

// Index converts a zero-based column and row into a cell index, or -1 when
// the position lies outside the field.
func (field *Field) Index(column, row int) int {
	if column < 0 || row < 0 || column >= field.width || row >= field.height {
		return -1
	}
	return row*field.width + column
}

func (field *Field) CellAt(idx int) *Cell {
	if idx >= 0 && idx < len(field.cells) {
		return &field.cells[idx]
	}
	return nil
}

func (field *Field) cellAt(idx int) (*Cell, error) {
	cell := field.CellAt(idx)
	if cell == nil {
		return nil, errors.Wrapf(ErrInvalidIndex, "index %d outside [0, %d)", idx, len(field.cells))
	}
	return cell, nil
}

// Neighbors returns the indexes of the up to 8 cells surrounding idx
func (field *Field) Neighbors(idx int) collections.Set[int] {
	neighbors := make(collections.Set[int])
	if field.CellAt(idx) == nil {
		return neighbors
	}

	row, column := idx/field.width, idx%field.width
	isAtTopBorder := row < 1
	isAtBottomBorder := row >= field.height-1

	if column >= 1 {
		neighbors.Add(idx - 1)

		if !isAtTopBorder {
			neighbors.Add(idx - field.width - 1)
		}
		if !isAtBottomBorder {
			neighbors.Add(idx + field.width - 1)
		}
	}

	if column < field.width-1 {
		neighbors.Add(idx + 1)

		if !isAtTopBorder {
			neighbors.Add(idx - field.width + 1)
		}
		if !isAtBottomBorder {
			neighbors.Add(idx + field.width + 1)
		}
	}

	if !isAtTopBorder {
		neighbors.Add(idx - field.width)
	}
	if !isAtBottomBorder {
		neighbors.Add(idx + field.width)
	}

	return neighbors
}

func (field *Field) canPlay() bool {
	return field.status == InProgress
}

// Reveal opens the cell at idx. The first call on a field finalizes mine
// positions, moving a mine away from idx if needed, so it never loses.
func (field *Field) Reveal(idx int) error {
	cell, err := field.cellAt(idx)
	if err != nil {
		return err
	}
	if !field.canPlay() {
		return nil
	}

	if !field.minesPlaced {
		field.placeMines(cell)
	}

	if !cell.isHidden {
		return nil
	}

	if cell.isMine {
		field.lose()
		return nil
	}

	flood(cell, field.unhide, field.hiddenNeighbors)

	if field.numHidden == field.numMines {
		field.win()
	}
	return nil
}

// ToggleFlag flags or unflags a hidden cell. Revealed cells are left alone.
func (field *Field) ToggleFlag(idx int) error {
	cell, err := field.cellAt(idx)
	if err != nil {
		return err
	}
	if !field.canPlay() {
		return nil
	}

	if cell.isHidden {
		cell.toggleFlagged()
	}
	return nil
}

func (field *Field) placeMines(first *Cell) {
	if first.isMine {
		for idx := range field.cells {
			if !field.cells[idx].isMine {
				field.cells[idx].isMine = true
				first.isMine = false

				Log.WithFields(logrus.Fields{
					"from": first.idx,
					"to":   idx,
				}).Debug("relocated mine under first reveal")
				break
			}
		}
	}

	field.countMines()
	field.minesPlaced = true
}

func (field *Field) countMines() {
	for idx := range field.cells {
		field.cells[idx].numMines = 0
	}

	for idx := range field.cells {
		if !field.cells[idx].isMine {
			continue
		}
		for neighbor := range field.Neighbors(idx) {
			field.cells[neighbor].numMines++
		}
	}
}

func (field *Field) unhide(cell *Cell) {
	if cell.isHidden {
		field.numHidden--
	}
	cell.unhide()
}

func (field *Field) hiddenNeighbors(cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for idx := range field.Neighbors(cell.idx) {
		if neighbor := &field.cells[idx]; neighbor.isHidden {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (field *Field) win() {
	field.status = Won
	Log.WithField("hidden", field.numHidden).Info("all safe cells revealed")
}

func (field *Field) lose() {
	field.status = Lost

	for idx := range field.cells {
		if cell := &field.cells[idx]; cell.isMine {
			field.unhide(cell)
		}
	}

	Log.WithField("mines", field.numMines).Info("stepped on a mine")
}

// String draws the field with 1-based column numbers on top and row numbers
// on the left.
func (field *Field) String() string {
	var b strings.Builder
	separator := "—│" + strings.Repeat("—", field.width) + "│"

	b.WriteString(" |")
	for column := 1; column <= field.width; column++ {
		b.WriteString(strconv.Itoa(column % 10))
	}
	b.WriteString("|\n")
	b.WriteString(separator)
	b.WriteString("\n")

	for row := 0; row < field.height; row++ {
		fmt.Fprintf(&b, "%d|", row+1)
		for _, cell := range field.cells[row*field.width : (row+1)*field.width] {
			b.WriteRune(cell.Marker())
		}
		b.WriteString("|\n")
	}

	b.WriteString(separator)
	return b.String()
}
