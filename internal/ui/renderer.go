package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/markusos/llmania/internal/world"
)

// Frame is everything the renderer needs to draw one game state.
type Frame struct {
	Map           *world.Map
	PlayerX       int
	PlayerY       int
	PlayerHealth  int
	PlayerMaxHP   int
	Messages      []string
	InputMode     InputMode
	CommandBuffer string
	Fogged        bool
}

// Renderer draws game frames to a terminal screen.
type Renderer struct {
	screen *Screen

	wallStyle    tcell.Style
	floorStyle   tcell.Style
	itemStyle    tcell.Style
	unknownStyle tcell.Style
	playerStyle  tcell.Style
	hudStyle     tcell.Style
	textStyle    tcell.Style
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &Renderer{
		screen:       screen,
		wallStyle:    base.Foreground(tcell.ColorDarkGray),
		floorStyle:   base.Foreground(tcell.ColorGray),
		itemStyle:    base.Foreground(tcell.ColorYellow),
		unknownStyle: base.Foreground(tcell.ColorDarkMagenta),
		playerStyle:  base.Foreground(tcell.ColorYellow).Bold(true),
		hudStyle:     base.Foreground(tcell.ColorWhite).Bold(true),
		textStyle:    base.Foreground(tcell.ColorWhite),
	}
}

// Render draws the map, the player, the HUD line, the recent messages and
// (in command mode) the command line with a visible cursor.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	for y := 0; y < f.Map.Height; y++ {
		for x := 0; x < f.Map.Width; x++ {
			tile := f.Map.Tile(x, y)
			symbol, category := tile.DisplayInfo(f.Fogged)
			r.screen.SetContent(x, y, symbol, r.styleFor(tile, category))
		}
	}
	r.screen.SetContent(f.PlayerX, f.PlayerY, world.SymbolPlayer, r.playerStyle)

	hud := fmt.Sprintf("HP: %d/%d  Pos: (%d, %d)", f.PlayerHealth, f.PlayerMaxHP, f.PlayerX, f.PlayerY)
	r.drawText(0, f.Map.Height, hud, r.hudStyle)

	for i, msg := range f.Messages {
		r.drawText(0, f.Map.Height+1+i, msg, r.textStyle)
	}

	if f.InputMode == ModeCommand {
		line := "> " + f.CommandBuffer
		y := f.Map.Height + 1 + len(f.Messages)
		r.drawText(0, y, line, r.textStyle)
		r.screen.ShowCursor(len(line), y)
	} else {
		r.screen.HideCursor()
	}

	r.screen.Show()
}

func (r *Renderer) styleFor(tile *world.Tile, category string) tcell.Style {
	switch category {
	case "monster":
		return tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tile.Monster.Color)
	case "item":
		return r.itemStyle
	case "wall":
		return r.wallStyle
	case "floor", "fog":
		return r.floorStyle
	default:
		return r.unknownStyle
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// RenderToStrings renders a frame as plain text lines, one per map row plus
// the HUD and messages. Used by the headless debug mode.
func RenderToStrings(f Frame) []string {
	lines := make([]string, 0, f.Map.Height+1+len(f.Messages))

	for y := 0; y < f.Map.Height; y++ {
		var row strings.Builder
		for x := 0; x < f.Map.Width; x++ {
			if x == f.PlayerX && y == f.PlayerY {
				row.WriteRune(world.SymbolPlayer)
				continue
			}
			symbol, _ := f.Map.Tile(x, y).DisplayInfo(f.Fogged)
			row.WriteRune(symbol)
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, fmt.Sprintf("HP: %d/%d  Pos: (%d, %d)", f.PlayerHealth, f.PlayerMaxHP, f.PlayerX, f.PlayerY))
	lines = append(lines, f.Messages...)
	return lines
}
