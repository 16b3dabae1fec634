package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineDebugRun(t *testing.T) {
	engine, err := New(Config{
		Width:     20,
		Height:    10,
		Seed:      42,
		DebugMode: true,
	})
	require.NoError(t, err)
	assert.Nil(t, engine.screen, "debug mode must not open a terminal")

	// Without an auto-player the debug run quits after one turn.
	err = engine.Run(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, StatePlaying, engine.state)
}

func TestEngineDebugRunWithAutoPlayer(t *testing.T) {
	if testing.Short() {
		t.Skip("auto-player run can take a while on unlucky maps")
	}

	engine, err := New(Config{
		Width:     20,
		Height:    10,
		Seed:      7,
		DebugMode: true,
		AIActive:  true,
	})
	require.NoError(t, err)

	err = engine.Run(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, StatePlaying, engine.state, "the auto-player run must finish")
	assert.NotEmpty(t, engine.log.Messages())
}

func TestEngineTeleport(t *testing.T) {
	engine, err := New(Config{Width: 20, Height: 10, Seed: 3, DebugMode: true})
	require.NoError(t, err)
	require.NoError(t, engine.initialize(context.Background()))

	before := struct{ x, y int }{engine.player.X, engine.player.Y}
	engine.teleportPlayer()

	assert.False(t, engine.player.X == before.x && engine.player.Y == before.y,
		"teleport should move the player")
	tile := engine.realMap.Tile(engine.player.X, engine.player.Y)
	require.NotNil(t, tile)
	assert.NotEqual(t, "wall", string(tile.Type))
	assert.Nil(t, tile.Monster, "teleport never lands on a monster")
}

func TestEngineInvisibilityTick(t *testing.T) {
	engine, err := New(Config{Width: 20, Height: 10, Seed: 3, DebugMode: true})
	require.NoError(t, err)
	require.NoError(t, engine.initialize(context.Background()))

	engine.player.InvisibilityTurns = 2

	engine.tickInvisibility()
	assert.True(t, engine.player.IsInvisible())
	assert.Empty(t, engine.log.Messages())

	engine.tickInvisibility()
	assert.False(t, engine.player.IsInvisible())
	assert.Equal(t, []string{"You are no longer invisible."}, engine.log.Messages())

	// Further ticks are no-ops.
	engine.tickInvisibility()
	assert.Len(t, engine.log.Messages(), 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "quit", StateQuit.String())
}
