package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/markusos/llmania/internal/ai"
	"github.com/markusos/llmania/internal/entity"
	"github.com/markusos/llmania/internal/gamedata"
	"github.com/markusos/llmania/internal/parser"
	"github.com/markusos/llmania/internal/telemetry"
	"github.com/markusos/llmania/internal/ui"
	"github.com/markusos/llmania/internal/world"
	"github.com/markusos/llmania/internal/worldgen"
)

const (
	// DefaultWidth and DefaultHeight are the default map dimensions.
	DefaultWidth  = 30
	DefaultHeight = 15

	// PlayerStartHealth is the health a new player starts with.
	PlayerStartHealth = 20

	// actionThreshold is the energy a monster needs to act; moving spends
	// this much, so a monster with MoveSpeed 10 acts exactly once per turn.
	actionThreshold = 10

	// debugTimeout bounds a headless debug run.
	debugTimeout = 30 * time.Second
)

// Config holds the engine's startup options.
type Config struct {
	Width  int
	Height int

	// Seed fixes the RNG for reproducible maps; 0 seeds from the clock.
	Seed int64

	// DebugMode runs headless: no terminal, the auto-player (or nobody)
	// plays, and the final state is printed as text.
	DebugMode bool

	// AIActive hands control to the auto-player.
	AIActive bool

	// AISleep is the delay between auto-player turns so a human can watch.
	AISleep time.Duration

	// FloorPortion overrides the generator's target floor density.
	FloorPortion float64
}

// Engine owns the full game state and runs the main loop.
type Engine struct {
	cfg Config
	rng *rand.Rand

	screen    *ui.Screen
	renderer  *ui.Renderer
	input     *ui.InputHandler
	processor *CommandProcessor

	realMap    *world.Map
	visibleMap *world.Map
	fog        *FogOfWar
	player     *entity.Player
	winPos     world.Point
	log        *MessageLog
	state      State

	monsterAIs map[uuid.UUID]*ai.MonsterAI
	autoPlayer *ai.AutoPlayer
}

// New creates an engine. In debug mode no terminal screen is opened.
func New(cfg Config) (*Engine, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		input:     ui.NewInputHandler(),
		processor: NewCommandProcessor(),
		log:       NewMessageLog(DefaultLogSize),
		state:     StatePlaying,
	}

	if !cfg.DebugMode {
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("opening terminal screen: %w", err)
		}
		e.screen = screen
		e.renderer = ui.NewRenderer(screen)
	}
	return e, nil
}

// Run initializes the world and runs the game loop until the game ends.
func (e *Engine) Run(ctx context.Context) error {
	if e.screen != nil {
		defer e.screen.Close()
	}
	if e.cfg.DebugMode {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, debugTimeout)
		defer cancel()
	}

	if err := e.initialize(ctx); err != nil {
		return err
	}

	e.log.Add("Welcome to LLMania! Find the Amulet of Yendor.")

	for e.state == StatePlaying {
		if ctx.Err() != nil {
			break
		}

		e.tickInvisibility()
		e.fog.Update()
		e.render()

		cmd, ok := e.nextCommand()
		if !ok {
			e.state = StateQuit
			break
		}

		e.processTurn(ctx, cmd)
		if e.state != StatePlaying {
			break
		}

		e.monsterActions()
	}

	e.fog.Update()
	if e.cfg.DebugMode {
		e.printDebugState()
		return nil
	}

	if e.state == StateGameOver {
		e.render()
		e.waitForKey()
	}
	return nil
}

// initialize generates the map and creates the player, fog of war and
// monster controllers.
func (e *Engine) initialize(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.initialize")
	defer span.End()

	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return fmt.Errorf("loading item data: %w", err)
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return fmt.Errorf("loading monster data: %w", err)
	}

	gen := worldgen.NewGenerator(e.rng, items, monsters, e.cfg.FloorPortion)
	realMap, start, win, err := gen.Generate(ctx, e.cfg.Width, e.cfg.Height)
	if err != nil {
		return err
	}

	e.realMap = realMap
	e.winPos = win
	e.player = entity.NewPlayer(start.X, start.Y, PlayerStartHealth)

	e.visibleMap = world.NewMap(e.cfg.Width, e.cfg.Height)
	e.fog = NewFogOfWar(e.player, e.realMap, e.visibleMap)

	e.monsterAIs = make(map[uuid.UUID]*ai.MonsterAI)
	for _, mon := range e.realMap.Monsters() {
		e.monsterAIs[mon.ID] = ai.NewMonsterAI(mon, e.player, e.realMap)
	}

	if e.cfg.AIActive {
		e.autoPlayer = ai.NewAutoPlayer(e.player, e.visibleMap, e.rng)
	}

	span.SetAttributes(
		attribute.Int("game.monster_count", len(e.monsterAIs)),
		attribute.Bool("game.ai_active", e.cfg.AIActive),
		attribute.Bool("game.debug", e.cfg.DebugMode),
	)
	return nil
}

// tickInvisibility counts the player's invisibility down one turn.
func (e *Engine) tickInvisibility() {
	if e.player.InvisibilityTurns == 0 {
		return
	}
	e.player.InvisibilityTurns--
	if e.player.InvisibilityTurns == 0 {
		e.log.Add("You are no longer invisible.")
	}
}

// nextCommand gets the next player command from the auto-player or the
// terminal. It returns false when no further commands can come.
func (e *Engine) nextCommand() (parser.Command, bool) {
	if e.autoPlayer != nil {
		if e.cfg.AISleep > 0 {
			time.Sleep(e.cfg.AISleep)
		}
		return e.autoPlayer.NextCommand(), true
	}
	if e.cfg.DebugMode {
		// Headless without an auto-player there is nothing to wait for.
		return parser.Command{Verb: parser.VerbQuit}, true
	}
	return e.pollCommand()
}

// pollCommand reads terminal events until one completes a command,
// re-rendering between keys so command-mode typing is visible.
func (e *Engine) pollCommand() (parser.Command, bool) {
	for {
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			cmd, err := e.input.HandleKey(ev)
			if err != nil {
				e.log.Add("Unknown command.")
				e.render()
				continue
			}
			if cmd != nil {
				return *cmd, true
			}
			e.render()
		case *tcell.EventResize:
			e.screen.Sync()
		case nil:
			// Screen was closed underneath us.
			return parser.Command{}, false
		}
	}
}

// processTurn applies one player command and its map-level side effects.
func (e *Engine) processTurn(ctx context.Context, cmd parser.Command) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("turn.verb", string(cmd.Verb)),
		attribute.String("turn.arg", cmd.Arg),
	)

	result := e.processor.Process(cmd, e.player, e.realMap, e.log, e.winPos)

	if result.UsedItem != nil && result.UsedItem.Kind == entity.KindTeleport {
		e.teleportPlayer()
	}

	if result.GameOver {
		if cmd.Verb == parser.VerbQuit {
			e.state = StateQuit
		} else {
			e.state = StateGameOver
		}
	}
	span.SetAttributes(attribute.String("turn.state", e.state.String()))
}

// teleportPlayer moves the player to a random free floor tile.
func (e *Engine) teleportPlayer() {
	tiles := e.realMap.FloorTiles()
	e.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	for _, p := range tiles {
		if p.X == e.player.X && p.Y == e.player.Y {
			continue
		}
		if tile := e.realMap.Tile(p.X, p.Y); tile.Monster != nil {
			continue
		}
		e.player.X, e.player.Y = p.X, p.Y
		e.log.Add("You were teleported to a new location.")
		return
	}
}

// monsterActions gives every monster energy and lets it act while it can
// afford to. Moving spends energy; an attack ends the monster's turn.
func (e *Engine) monsterActions() {
	for _, mon := range e.realMap.Monsters() {
		controller := e.monsterAIs[mon.ID]
		if controller == nil || !mon.IsAlive() {
			continue
		}

		mon.MoveEnergy += mon.MoveSpeed
		for mon.MoveEnergy >= actionThreshold {
			cmd, acted := controller.NextAction()
			if !acted {
				break
			}

			if cmd.Verb == parser.VerbMove {
				mon.MoveEnergy -= actionThreshold
				e.processor.ProcessMonsterCommand(cmd, mon, e.player, e.realMap, e.log)
				continue
			}

			result := e.processor.ProcessMonsterCommand(cmd, mon, e.player, e.realMap, e.log)
			if result.GameOver {
				e.state = StateGameOver
				return
			}
			break
		}
	}
}

// render draws the current fogged view.
func (e *Engine) render() {
	if e.renderer == nil {
		return
	}
	e.renderer.Render(ui.Frame{
		Map:           e.visibleMap,
		PlayerX:       e.player.X,
		PlayerY:       e.player.Y,
		PlayerHealth:  e.player.Health,
		PlayerMaxHP:   e.player.MaxHealth,
		Messages:      e.log.Messages(),
		InputMode:     e.input.Mode(),
		CommandBuffer: e.input.Buffer(),
		Fogged:        true,
	})
}

// waitForKey blocks until any key is pressed, so the final game-over screen
// stays readable.
func (e *Engine) waitForKey() {
	for {
		switch e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case nil:
			return
		}
	}
}

// printDebugState dumps the unfogged map and the message log as plain text.
func (e *Engine) printDebugState() {
	lines := ui.RenderToStrings(ui.Frame{
		Map:          e.realMap,
		PlayerX:      e.player.X,
		PlayerY:      e.player.Y,
		PlayerHealth: e.player.Health,
		PlayerMaxHP:  e.player.MaxHealth,
		Messages:     e.log.Messages(),
	})
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Printf("Final state: %s\n", e.state)
}
