// Package parser turns free-text player input into structured commands.
package parser

import (
	"errors"
	"strings"
)

// Verb is the canonical action of a parsed command.
type Verb string

const (
	VerbMove      Verb = "move"
	VerbTake      Verb = "take"
	VerbDrop      Verb = "drop"
	VerbUse       Verb = "use"
	VerbAttack    Verb = "attack"
	VerbInventory Verb = "inventory"
	VerbLook      Verb = "look"
	VerbQuit      Verb = "quit"
)

// Directions accepted by the move verb.
const (
	North = "north"
	South = "south"
	East  = "east"
	West  = "west"
)

// Command is a parsed player action. Arg holds the direction for move, the
// item name for take/drop/use, and the optional target name for attack.
type Command struct {
	Verb Verb
	Arg  string
}

// Parse errors. Empty input is distinguished from unrecognized input so
// the engine can silently ignore blank lines.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrUnknownCommand = errors.New("unknown command")
)

// directionAliases maps bare direction words to canonical directions.
var directionAliases = map[string]string{
	"n": North, "north": North,
	"s": South, "south": South,
	"e": East, "east": East,
	"w": West, "west": West,
}

// Parse interprets a line of player input. Input is lowercased and
// whitespace-trimmed; everything after the verb becomes the argument.
func Parse(input string) (Command, error) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(words) == 0 {
		return Command{}, ErrEmptyInput
	}

	verb := words[0]
	arg := strings.Join(words[1:], " ")

	switch verb {
	case "move":
		if _, ok := directionAliases[arg]; ok && len(words) == 2 {
			return Command{Verb: VerbMove, Arg: directionAliases[arg]}, nil
		}
		return Command{}, ErrUnknownCommand

	case "n", "north", "s", "south", "e", "east", "w", "west":
		// Shorthand directions take no further arguments.
		if arg != "" {
			return Command{}, ErrUnknownCommand
		}
		return Command{Verb: VerbMove, Arg: directionAliases[verb]}, nil

	case "take", "get":
		// Argument optional; the processor asks "take what?" when missing.
		return Command{Verb: VerbTake, Arg: arg}, nil

	case "drop":
		return Command{Verb: VerbDrop, Arg: arg}, nil

	case "use", "u":
		return Command{Verb: VerbUse, Arg: arg}, nil

	case "attack", "fight", "f":
		// Argument optional; the processor auto-targets a single adjacent
		// monster.
		return Command{Verb: VerbAttack, Arg: arg}, nil

	case "inventory", "i":
		if arg != "" {
			return Command{}, ErrUnknownCommand
		}
		return Command{Verb: VerbInventory}, nil

	case "look", "l":
		if arg != "" {
			return Command{}, ErrUnknownCommand
		}
		return Command{Verb: VerbLook}, nil

	case "quit", "q", "exit":
		if arg != "" {
			return Command{}, ErrUnknownCommand
		}
		return Command{Verb: VerbQuit}, nil
	}

	return Command{}, ErrUnknownCommand
}

// DirectionDelta converts a canonical direction into a coordinate delta.
// The returned ok is false for anything that is not a direction.
func DirectionDelta(direction string) (dx, dy int, ok bool) {
	switch direction {
	case North:
		return 0, -1, true
	case South:
		return 0, 1, true
	case East:
		return 1, 0, true
	case West:
		return -1, 0, true
	}
	return 0, 0, false
}
