package game

// Director plays the game in place of console input
type Director interface {
	/**
	 * Initialize the director for a new field
	 */
	Init(*Field)

	/**
	 * Choose the next move, or report false when out of moves
	 */
	Act() (Command, bool)
}
