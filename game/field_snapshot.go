package game

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// FieldSnapshot is a YAML-friendly picture of a field with one character per
// cell:
//
//	# hidden   . revealed   f flagged
//	O hidden mine   X revealed mine   F flagged mine
type FieldSnapshot struct {
	Status string `yaml:"status,omitempty"`
	Board  string `yaml:"board"`
}

func (snapshot *FieldSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (field *Field) Snapshot() *FieldSnapshot {
	var b strings.Builder
	for row := 0; row < field.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for idx := row * field.width; idx < (row+1)*field.width; idx++ {
			b.WriteByte(field.cells[idx].serialize())
		}
	}

	return &FieldSnapshot{
		Status: field.status.String(),
		Board:  b.String(),
	}
}

// CreateField builds a field whose mines are already placed, so the first
// reveal is not protected. With fresh set, every cell starts hidden and
// unflagged and the game starts over.
func (snapshot *FieldSnapshot) CreateField(fresh bool) (*Field, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.Board), "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSpace(row)
	}

	height := len(rows)
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty board")
	}

	status := InProgress
	if !fresh && snapshot.Status != "" {
		var ok bool
		if status, ok = parseStatus(snapshot.Status); !ok {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown status %q", snapshot.Status)
		}
	}

	field := createField(width, height, 0)
	field.status = status

	for y, row := range rows {
		if utf8.RuneCountInString(row) != width {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d is not %d cells wide", y+1, width)
		}

		for x, c := range []rune(row) {
			cell := &field.cells[y*width+x]
			if !cell.deserialize(c, fresh) {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at row %d", c, y+1)
			}
			if cell.isMine {
				field.numMines++
			}
			if !cell.isHidden {
				field.numHidden--
			}
		}
	}

	if field.numMines >= field.NumCells() {
		return nil, errors.Wrap(ErrInvalidSnapshot, "board has no safe cell")
	}

	field.countMines()
	field.minesPlaced = true

	return field, nil
}

func LoadSnapshot(in string) (*FieldSnapshot, error) {
	var snapshot FieldSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	return &snapshot, nil
}
