package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const AskNumMines = -1

type GameConfig struct {
	Width, Height int
	// Number of mines; AskNumMines prompts the player
	NumMines int

	Seed int64

	// Snapshot to load the field from, instead of placing mines randomly
	Snapshot *FieldSnapshot
	// Whether to set all cells as hidden when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		NumMines:          AskNumMines,
		Director:          nil,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

func (config GameConfig) createField() (*Field, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateField(config.LoadSnapshotFresh)
	}
	return FieldConfig{
		Width:    config.Width,
		Height:   config.Height,
		NumMines: config.NumMines,
		Seed:     config.Seed,
	}.CreateField()
}

func (config GameConfig) onGameEnd(field *Field) {
	Log.WithField("status", field.Status()).Info("game over")
	if Log.Level >= logrus.DebugLevel {
		Log.Debugf("final field:\n%s", field.Snapshot().Serialize())
	}
}

// Run plays one game on the console, reading moves from in (or the Director)
// and drawing the field to out after every move.
func Run(config GameConfig, in io.Reader, out io.Writer) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	scanner := bufio.NewScanner(in)

	if config.Snapshot == nil && config.NumMines == AskNumMines {
		numMines, err := askNumMines(scanner, out, config.Width*config.Height)
		if err != nil {
			return err
		}
		config.NumMines = numMines
	}

	field, err := config.createField()
	if err != nil {
		return err
	}
	if config.Director != nil {
		config.Director.Init(field)
	}

	for !field.Status().IsTerminal() {
		fmt.Fprintf(out, "\n%s\n", field)
		fmt.Fprintln(out, "Set/unset mines marks or claim a cell as free:")

		var command Command
		if config.Director != nil {
			var ok bool
			if command, ok = config.Director.Act(); !ok {
				return errors.New("director ran out of moves")
			}
			fmt.Fprintln(out, command)
		} else {
			if !scanner.Scan() {
				return inputError(scanner)
			}
			if command, err = ParseCommand(scanner.Text()); err != nil {
				Log.WithError(err).Debug("rejected input")
				fmt.Fprintln(out, "Please enter a column number, a row number and free or mine, e.g. \"3 2 free\"")
				continue
			}
		}

		if command.Action != Free && command.Action != Mark {
			fmt.Fprintf(out, "Unknown command %s\n", command.Action)
			continue
		}

		if err := command.Apply(field); err != nil {
			if errors.Is(err, ErrInvalidIndex) {
				fmt.Fprintf(out, "There is no cell at column %d, row %d\n", command.Column, command.Row)
				continue
			}
			return err
		}
	}

	fmt.Fprintf(out, "\n%s\n", field)
	switch field.Status() {
	case Lost:
		fmt.Fprintln(out, "You stepped on a mine and failed!")
	case Won:
		fmt.Fprintln(out, "Congratulations! You found all the mines!")
	}

	config.onGameEnd(field)
	return nil
}

func askNumMines(scanner *bufio.Scanner, out io.Writer, numCells int) (int, error) {
	for {
		fmt.Fprintln(out, "How many mines do you want on the field?")
		if !scanner.Scan() {
			return 0, inputError(scanner)
		}

		numMines, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || numMines < 0 || numMines >= numCells {
			fmt.Fprintf(out, "Please enter a number from 0 to %d\n", numCells-1)
			continue
		}
		return numMines, nil
	}
}

func inputError(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return ErrInputClosed
}
