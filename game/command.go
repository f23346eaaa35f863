package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Action string

const (
	// Free claims a cell as free of mines and reveals it
	Free Action = "free"
	// Mark sets or unsets a mine mark
	Mark Action = "mine"
)

// Command is one player move. Column and Row are 1-based.
type Command struct {
	Column, Row int
	Action      Action
}

func (command Command) String() string {
	return fmt.Sprintf("%d %d %s", command.Column, command.Row, command.Action)
}

// Index returns the cell index of the command on a field of the given width
func (command Command) Index(width int) int {
	return (command.Row-1)*width + (command.Column - 1)
}

// ParseCommand reads a "column row action" line. The action is not checked
// against the known actions, so callers can report unknown ones themselves.
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return Command{}, errors.Wrapf(ErrInvalidCommand, "expected \"column row action\", got %q", line)
	}

	column, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Command{}, errors.Wrapf(ErrInvalidCommand, "column %q is not a number", tokens[0])
	}
	row, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Command{}, errors.Wrapf(ErrInvalidCommand, "row %q is not a number", tokens[1])
	}

	return Command{
		Column: column,
		Row:    row,
		Action: Action(tokens[2]),
	}, nil
}

// Apply performs the command on field
func (command Command) Apply(field *Field) error {
	if field.Index(command.Column-1, command.Row-1) < 0 {
		return errors.Wrapf(ErrInvalidIndex, "no cell at column %d, row %d", command.Column, command.Row)
	}

	idx := command.Index(field.Width())
	switch command.Action {
	case Free:
		return field.Reveal(idx)
	case Mark:
		return field.ToggleFlag(idx)
	default:
		return errors.Wrapf(ErrInvalidCommand, "unknown action %q", command.Action)
	}
}

// Command returns the command performing action on the cell at idx
func (field *Field) Command(idx int, action Action) Command {
	return Command{
		Column: idx%field.width + 1,
		Row:    idx/field.width + 1,
		Action: action,
	}
}
