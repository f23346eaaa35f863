package cmd

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/textsweep/game"
	"gopkg.in/yaml.v2"
)

// fileConfig holds settings read from --config. Flags given on the command
// line take precedence.
type fileConfig struct {
	Mines    *int   `yaml:"mines"`
	Seed     int64  `yaml:"seed"`
	Director bool   `yaml:"director"`
	LogLevel string `yaml:"log_level"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	var config fileConfig
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &config, nil
}

func (config *fileConfig) apply(cmd *cobra.Command, gameConfig *game.GameConfig) {
	flags := cmd.Flags()

	if config.Mines != nil && !flags.Changed("mines") {
		gameConfig.NumMines = *config.Mines
	}
	if config.Seed != 0 && !flags.Changed("seed") {
		gameConfig.Seed = config.Seed
	}
	if config.Director && !flags.Changed("director") {
		useDirector = true
	}
	if config.LogLevel != "" && !flags.Changed("log-level") {
		logLevel = config.LogLevel
	}
}

func loadBoardFile(path string) (*game.FieldSnapshot, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading board")
	}
	return game.LoadSnapshot(string(in))
}
