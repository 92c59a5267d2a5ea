package main

import (
	"fmt"

	"github.com/plus3/diceescape/game"
)

// bannerTicks is how long a banner stays up, at 60 ticks per second.
const bannerTicks = 150

// view collects what the session tells the presentation layer: HUD values,
// camera toggles and short banner messages.
type view struct {
	hud       game.HUD
	topDown   bool
	wireframe bool
	spin      float64

	banner      string
	bannerTicks int
	sticky      bool
}

func newView() *view {
	return &view{}
}

func (v *view) Present(ev game.Event) {
	switch ev.Kind {
	case game.EventHUD:
		v.hud = ev.HUD
	case game.EventLevelLoaded:
		v.spin = 0
		v.show(fmt.Sprintf("Level %d", ev.Level), false)
	case game.EventLevelComplete:
		v.show(fmt.Sprintf("Level complete! %d s left, bonus +%d. Press Enter", ev.SecondsLeft, ev.Bonus), true)
	case game.EventGameOver:
		if ev.Won {
			v.show(fmt.Sprintf("You escaped! Final score %d. Enter to play again", ev.Score), true)
		} else {
			v.show(fmt.Sprintf("Game over on level %d. Final score %d. Enter to play again", ev.Level, ev.Score), true)
		}
	case game.EventPaused:
		v.show("Paused", true)
	case game.EventResumed:
		v.clear()
	case game.EventToggleCamera:
		v.topDown = !v.topDown
	case game.EventToggleWireframe:
		v.wireframe = !v.wireframe
	case game.EventTimerReset:
		v.show("Time restored", false)
	}
}

func (v *view) show(msg string, sticky bool) {
	v.banner = msg
	v.bannerTicks = bannerTicks
	v.sticky = sticky
}

func (v *view) clear() {
	v.banner = ""
	v.bannerTicks = 0
	v.sticky = false
}

// tick ages the banner and turns the camera while the level complete
// screen is up.
func (v *view) tick(spinning bool) {
	if spinning {
		v.spin += 0.01
	}
	if v.sticky || v.bannerTicks == 0 {
		return
	}
	v.bannerTicks--
	if v.bannerTicks == 0 {
		v.banner = ""
	}
}
