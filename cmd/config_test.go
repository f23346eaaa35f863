package cmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/textsweep/game"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func newFlagsCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Int("mines", 0, "")
	cmd.Flags().Int64("seed", 0, "")
	cmd.Flags().Bool("director", false, "")
	cmd.Flags().String("log-level", "", "")
	_ = cmd.Flags().Parse(args)
	return cmd
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "mines: 12\nseed: 99\ndirector: true\nlog_level: debug\n")

	config, err := loadConfigFile(path)
	require.NoError(t, err)
	require.NotNil(t, config.Mines)
	assert.Equal(t, 12, *config.Mines)
	assert.Equal(t, int64(99), config.Seed)
	assert.True(t, config.Director)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "config.yaml", "width: 30\n")

	_, err := loadConfigFile(path)
	assert.Error(t, err)

	_, err = loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigFileYieldsToFlags(t *testing.T) {
	defer func(director bool, level string) {
		useDirector, logLevel = director, level
	}(useDirector, logLevel)
	useDirector, logLevel = false, "warn"

	mines := 12
	config := &fileConfig{Mines: &mines, Seed: 99, Director: true, LogLevel: "debug"}

	gameConfig := game.NewGameConfig()
	config.apply(newFlagsCommand("--mines", "3", "--log-level", "error"), &gameConfig)

	assert.Equal(t, game.AskNumMines, gameConfig.NumMines)
	assert.Equal(t, int64(99), gameConfig.Seed)
	assert.True(t, useDirector)
	assert.Equal(t, "warn", logLevel)

	gameConfig = game.NewGameConfig()
	config.apply(newFlagsCommand(), &gameConfig)
	assert.Equal(t, 12, gameConfig.NumMines)
	assert.Equal(t, "debug", logLevel)
}
