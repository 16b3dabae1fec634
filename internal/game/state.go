// Package game provides the main game loop, command dispatch and state
// management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal state: the turn loop is running.
	StatePlaying State = iota
	// StateGameOver is reached on victory, defeat or quit; the engine
	// shows the final frame before leaving.
	StateGameOver
	// StateQuit ends the run loop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
