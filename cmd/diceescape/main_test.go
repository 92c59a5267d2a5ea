package main

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/diceescape/game"
	"github.com/stretchr/testify/assert"
)

func TestPressedDirection(t *testing.T) {
	pressed := func(keys ...ebiten.Key) func(ebiten.Key) bool {
		return func(k ebiten.Key) bool {
			for _, key := range keys {
				if key == k {
					return true
				}
			}
			return false
		}
	}

	assert.Equal(t, game.DirNone, pressedDirection(pressed()))
	assert.Equal(t, game.DirLeft, pressedDirection(pressed(ebiten.KeyArrowLeft)))
	assert.Equal(t, game.DirDown, pressedDirection(pressed(ebiten.KeyArrowDown)))
	assert.Equal(t, game.DirNone, pressedDirection(pressed(ebiten.KeyA)), "letters belong to cheat codes")
	assert.Equal(t, game.DirLeft, pressedDirection(pressed(ebiten.KeyArrowUp, ebiten.KeyArrowLeft)))
}

func TestView(t *testing.T) {
	t.Run("hud", func(t *testing.T) {
		v := newView()
		v.Present(game.Event{Kind: game.EventHUD, HUD: game.HUD{Level: 2, Score: 40}})
		assert.Equal(t, 2, v.hud.Level)
		assert.Equal(t, 40, v.hud.Score)
	})

	t.Run("banner expires", func(t *testing.T) {
		v := newView()
		v.Present(game.Event{Kind: game.EventLevelLoaded, Level: 3})
		assert.Equal(t, "Level 3", v.banner)
		for range bannerTicks - 1 {
			v.tick(false)
		}
		assert.NotEmpty(t, v.banner)
		v.tick(false)
		assert.Empty(t, v.banner)
	})

	t.Run("sticky banner", func(t *testing.T) {
		v := newView()
		v.Present(game.Event{Kind: game.EventPaused})
		for range bannerTicks * 2 {
			v.tick(false)
		}
		assert.Equal(t, "Paused", v.banner)
		v.Present(game.Event{Kind: game.EventResumed})
		assert.Empty(t, v.banner)
	})

	t.Run("game over", func(t *testing.T) {
		v := newView()
		v.Present(game.Event{Kind: game.EventGameOver, Won: true, Score: 120})
		assert.Contains(t, v.banner, "You escaped")
		assert.Contains(t, v.banner, "120")

		v.Present(game.Event{Kind: game.EventGameOver, Level: 4, Score: 7})
		assert.Contains(t, v.banner, "level 4")
	})

	t.Run("camera toggles", func(t *testing.T) {
		v := newView()
		v.Present(game.Event{Kind: game.EventToggleCamera})
		v.Present(game.Event{Kind: game.EventToggleWireframe})
		assert.True(t, v.topDown)
		assert.True(t, v.wireframe)
		v.Present(game.Event{Kind: game.EventToggleCamera})
		assert.False(t, v.topDown)
	})

	t.Run("spin", func(t *testing.T) {
		v := newView()
		v.tick(true)
		v.tick(true)
		assert.InDelta(t, 0.02, v.spin, 1e-9)
		v.Present(game.Event{Kind: game.EventLevelLoaded, Level: 2})
		assert.Zero(t, v.spin)
	})
}

func TestCameraProject(t *testing.T) {
	cam := camera{originX: 100, originY: 50, center: game.Vec3{X: 200, Z: 200}, scale: 0.5, tilt: 1}

	x, y := cam.project(game.Vec3{X: 200, Z: 200})
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	x, y = cam.project(game.Vec3{X: 300, Y: 80, Z: 100})
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 0.0, y, "height is ignored from straight above")

	cam.tilt = 0.5
	_, y = cam.project(game.Vec3{X: 200, Y: 40, Z: 200})
	assert.Equal(t, 40.0, y, "raised points move up the screen")

	cam.tilt = 1
	cam.spin = math.Pi / 2
	x, y = cam.project(game.Vec3{X: 300, Z: 200})
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 100.0, y, 1e-9)
}

func TestHUDLines(t *testing.T) {
	lines := hudLines(game.HUD{Level: 1, LevelName: "First Steps", Score: 10, RoundScore: 96, Lives: 3, SecondsLeft: 59})
	assert.Equal(t, []string{
		"Level 1: First Steps",
		"Score 10   Round 96   Lives 3   Time 59",
	}, lines)

	lines = hudLines(game.HUD{CanRetry: true})
	assert.Len(t, lines, 3)
	assert.Equal(t, "F5 retry level", lines[2])
}
