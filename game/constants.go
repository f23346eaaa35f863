package game

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

var statusNames = map[Status]string{
	InProgress: "in_progress",
	Won:        "won",
	Lost:       "lost",
}

func (status Status) String() string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further moves are accepted.
func (status Status) IsTerminal() bool {
	return status != InProgress
}

func parseStatus(name string) (Status, bool) {
	for status, statusName := range statusNames {
		if statusName == name {
			return status, true
		}
	}
	return InProgress, false
}

// Markers used when rendering a field as text
const (
	FlagMarker   = '*'
	HiddenMarker = '.'
	MineMarker   = 'X'
	EmptyMarker  = '/'
)

const (
	DefaultWidth    = 9
	DefaultHeight   = 9
	DefaultNumMines = 10
)
