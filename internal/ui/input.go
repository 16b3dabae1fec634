package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/markusos/llmania/internal/parser"
)

// InputMode is the input handler's current mode.
type InputMode string

const (
	// ModeMovement maps single keys (arrows, WASD) straight to commands.
	ModeMovement InputMode = "movement"
	// ModeCommand collects typed text until Enter, then parses it.
	ModeCommand InputMode = "command"
)

// InputHandler turns key events into parsed commands. It starts in
// movement mode; the backtick key toggles a free-text command mode.
type InputHandler struct {
	mode   InputMode
	buffer []rune
}

// NewInputHandler creates an input handler in movement mode.
func NewInputHandler() *InputHandler {
	return &InputHandler{mode: ModeMovement}
}

// Mode returns the current input mode.
func (h *InputHandler) Mode() InputMode {
	return h.mode
}

// Buffer returns the text typed so far in command mode.
func (h *InputHandler) Buffer() string {
	return string(h.buffer)
}

// HandleKey processes one key event. It returns a command when the key
// completed one, or parser.ErrUnknownCommand when a typed command line
// could not be understood. A nil command with a nil error means the key
// only changed mode or buffer state.
func (h *InputHandler) HandleKey(ev *tcell.EventKey) (*parser.Command, error) {
	if h.mode == ModeMovement {
		return h.handleMovementKey(ev)
	}
	return h.handleCommandKey(ev)
}

func (h *InputHandler) handleMovementKey(ev *tcell.EventKey) (*parser.Command, error) {
	switch ev.Key() {
	case tcell.KeyUp:
		return &parser.Command{Verb: parser.VerbMove, Arg: parser.North}, nil
	case tcell.KeyDown:
		return &parser.Command{Verb: parser.VerbMove, Arg: parser.South}, nil
	case tcell.KeyLeft:
		return &parser.Command{Verb: parser.VerbMove, Arg: parser.West}, nil
	case tcell.KeyRight:
		return &parser.Command{Verb: parser.VerbMove, Arg: parser.East}, nil
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &parser.Command{Verb: parser.VerbQuit}, nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return &parser.Command{Verb: parser.VerbMove, Arg: parser.North}, nil
		case 's', 'S':
			return &parser.Command{Verb: parser.VerbMove, Arg: parser.South}, nil
		case 'a', 'A':
			return &parser.Command{Verb: parser.VerbMove, Arg: parser.West}, nil
		case 'd', 'D':
			return &parser.Command{Verb: parser.VerbMove, Arg: parser.East}, nil
		case '`', '~':
			h.mode = ModeCommand
			h.buffer = h.buffer[:0]
			return nil, nil
		}
	}
	return nil, nil
}

func (h *InputHandler) handleCommandKey(ev *tcell.EventKey) (*parser.Command, error) {
	switch ev.Key() {
	case tcell.KeyEnter:
		line := string(h.buffer)
		h.buffer = h.buffer[:0]
		h.mode = ModeMovement
		if line == "" {
			return nil, nil
		}
		cmd, err := parser.Parse(line)
		if err != nil {
			return nil, err
		}
		return &cmd, nil

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(h.buffer) > 0 {
			h.buffer = h.buffer[:len(h.buffer)-1]
		}
		return nil, nil

	case tcell.KeyEscape:
		h.buffer = h.buffer[:0]
		h.mode = ModeMovement
		return nil, nil

	case tcell.KeyCtrlC:
		return &parser.Command{Verb: parser.VerbQuit}, nil

	case tcell.KeyRune:
		r := ev.Rune()
		if (r == '`' || r == '~') && len(h.buffer) == 0 {
			h.mode = ModeMovement
			return nil, nil
		}
		h.buffer = append(h.buffer, r)
		return nil, nil
	}
	return nil, nil
}
