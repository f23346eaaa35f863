package game

import "github.com/pkg/errors"

var (
	ErrInvalidIndex      = errors.New("invalid cell index")
	ErrInvalidDimensions = errors.New("invalid field dimensions")
	ErrInvalidMineCount  = errors.New("invalid number of mines")
	ErrInvalidSnapshot   = errors.New("invalid field snapshot")
	ErrInvalidCommand    = errors.New("invalid command")
	ErrInputClosed       = errors.New("input closed before the game ended")
)
