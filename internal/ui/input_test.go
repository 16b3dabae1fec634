package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/markusos/llmania/internal/parser"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeLine(t *testing.T, h *InputHandler, line string) {
	t.Helper()
	for _, r := range line {
		if cmd, err := h.HandleKey(runeKey(r)); cmd != nil || err != nil {
			t.Fatalf("typing %q mid-line produced cmd=%v err=%v", r, cmd, err)
		}
	}
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{key(tcell.KeyUp), parser.North},
		{key(tcell.KeyDown), parser.South},
		{key(tcell.KeyLeft), parser.West},
		{key(tcell.KeyRight), parser.East},
		{runeKey('w'), parser.North},
		{runeKey('s'), parser.South},
		{runeKey('a'), parser.West},
		{runeKey('d'), parser.East},
		{runeKey('W'), parser.North},
	}

	for _, tt := range tests {
		h := NewInputHandler()
		cmd, err := h.HandleKey(tt.ev)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd == nil || cmd.Verb != parser.VerbMove || cmd.Arg != tt.want {
			t.Errorf("got %v, want move %s", cmd, tt.want)
		}
	}
}

func TestEscapeQuitsInMovementMode(t *testing.T) {
	h := NewInputHandler()
	cmd, err := h.HandleKey(key(tcell.KeyEscape))
	if err != nil || cmd == nil || cmd.Verb != parser.VerbQuit {
		t.Errorf("got cmd=%v err=%v, want quit", cmd, err)
	}
}

func TestCommandModeRoundTrip(t *testing.T) {
	h := NewInputHandler()

	if cmd, _ := h.HandleKey(runeKey('`')); cmd != nil {
		t.Fatal("entering command mode produced a command")
	}
	if h.Mode() != ModeCommand {
		t.Fatalf("mode = %s, want command", h.Mode())
	}

	typeLine(t, h, "take amulet of yendor")
	if h.Buffer() != "take amulet of yendor" {
		t.Fatalf("buffer = %q", h.Buffer())
	}

	cmd, err := h.HandleKey(key(tcell.KeyEnter))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd == nil || cmd.Verb != parser.VerbTake || cmd.Arg != "amulet of yendor" {
		t.Errorf("got %v, want take amulet of yendor", cmd)
	}
	if h.Mode() != ModeMovement {
		t.Error("enter should return to movement mode")
	}
	if h.Buffer() != "" {
		t.Error("buffer not cleared after enter")
	}
}

func TestCommandModeBackspace(t *testing.T) {
	h := NewInputHandler()
	h.HandleKey(runeKey('`'))
	typeLine(t, h, "loko")

	h.HandleKey(key(tcell.KeyBackspace2))
	h.HandleKey(key(tcell.KeyBackspace2))
	typeLine(t, h, "ok")

	cmd, err := h.HandleKey(key(tcell.KeyEnter))
	if err != nil || cmd == nil || cmd.Verb != parser.VerbLook {
		t.Errorf("got cmd=%v err=%v, want look", cmd, err)
	}
}

func TestCommandModeUnknownCommand(t *testing.T) {
	h := NewInputHandler()
	h.HandleKey(runeKey('`'))
	typeLine(t, h, "dance")

	cmd, err := h.HandleKey(key(tcell.KeyEnter))
	if cmd != nil {
		t.Errorf("unexpected command: %v", cmd)
	}
	if err != parser.ErrUnknownCommand {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
	if h.Mode() != ModeMovement {
		t.Error("a failed parse should still return to movement mode")
	}
}

func TestCommandModeEscapeCancels(t *testing.T) {
	h := NewInputHandler()
	h.HandleKey(runeKey('`'))
	typeLine(t, h, "qui")

	if cmd, _ := h.HandleKey(key(tcell.KeyEscape)); cmd != nil {
		t.Errorf("escape produced a command: %v", cmd)
	}
	if h.Mode() != ModeMovement || h.Buffer() != "" {
		t.Errorf("mode=%s buffer=%q after escape", h.Mode(), h.Buffer())
	}
}

func TestCommandModeBacktickOnEmptyExits(t *testing.T) {
	h := NewInputHandler()
	h.HandleKey(runeKey('`'))

	if cmd, _ := h.HandleKey(runeKey('`')); cmd != nil {
		t.Errorf("backtick on empty buffer produced a command: %v", cmd)
	}
	if h.Mode() != ModeMovement {
		t.Errorf("mode = %s, want movement", h.Mode())
	}

	// With text in the buffer, a backtick is just a character.
	h.HandleKey(runeKey('`'))
	typeLine(t, h, "x`")
	if h.Buffer() != "x`" {
		t.Errorf("buffer = %q, want \"x`\"", h.Buffer())
	}
}

func TestEmptyEnterIsIgnored(t *testing.T) {
	h := NewInputHandler()
	h.HandleKey(runeKey('`'))

	cmd, err := h.HandleKey(key(tcell.KeyEnter))
	if cmd != nil || err != nil {
		t.Errorf("empty enter produced cmd=%v err=%v", cmd, err)
	}
	if h.Mode() != ModeMovement {
		t.Error("empty enter should return to movement mode")
	}
}
