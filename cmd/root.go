package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/textsweep/director/constraint"
	"github.com/they4kman/textsweep/game"
)

var gameConfig = game.NewGameConfig()
var useDirector = false
var configPath string
var boardPath string
var logLevel = "warn"

var rootCmd = &cobra.Command{
	Use:   "textsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `textsweep is a text-based Minesweeper game on a 9x9 field.

Run with no arguments to be asked for the number of mines
	textsweep

Moves are entered as column, row and action, e.g.
	3 2 free    reveal the cell in column 3, row 2
	3 2 mine    set or unset a mine mark on it

Use the director flag to make the computer play for you
	textsweep --mines 10 --director
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			fileConfig, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			fileConfig.apply(cmd, &gameConfig)
		}

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		game.Log.SetLevel(level)

		if boardPath != "" {
			snapshot, err := loadBoardFile(boardPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		if useDirector {
			director := &constraint.Director{}
			director.Random.Seed = gameConfig.Seed
			gameConfig.Director = director
		}

		return game.Run(gameConfig, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", game.AskNumMines, "Number of mines to place in the field (asked when not set)")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&boardPath, "board", "", "Load the field from a YAML snapshot instead of placing mines randomly")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with default settings")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")
}
