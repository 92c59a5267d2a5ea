package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
)

// SessionPanel shows the session's HUD values and offers controls that
// drive it through its public operations.
type SessionPanel struct {
	session   *game.Session
	jumpLevel int32
	lastError string
}

func NewSessionPanel(session *game.Session) *SessionPanel {
	return &SessionPanel{session: session, jumpLevel: 1}
}

func (p *SessionPanel) Render(*engine.Frame) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := p.session
	hud := s.HUD()
	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Level %d/%d: %s", hud.Level, s.LevelCount(), hud.LevelName))
	imgui.Text(fmt.Sprintf("Score: %d  Round: %d  Lives: %d", hud.Score, hud.RoundScore, hud.Lives))
	imgui.Text(fmt.Sprintf("Time left: %ds (%s)", hud.SecondsLeft, s.Timer().State()))

	if die := s.Die(); die != nil {
		dir, angle := die.Roll()
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Die: %v face %d %s", die.Cell(), die.Face(), die.State()))
		if dir != game.DirNone {
			imgui.Text(fmt.Sprintf("Rolling %s %.0f deg", dir, angle))
		}
		pos := die.Position()
		imgui.Text(fmt.Sprintf("Position: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z))
	}

	stats := s.Stats()
	imgui.Text(fmt.Sprintf("Moves %d  Rejected %d  Deaths %d  Coins %d", stats.Moves, stats.Rejected, stats.Deaths, stats.Coins))

	imgui.Separator()
	if s.State() == game.StatePaused {
		if imgui.Button("Resume") {
			s.Resume()
		}
	} else if imgui.Button("Pause") {
		s.Pause()
	}
	imgui.SameLine()
	if imgui.Button("Retry") {
		s.RetryLevel()
	}
	imgui.SameLine()
	if imgui.Button("Kill die") {
		s.KillDie()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		p.report(s.Restart())
	}

	imgui.SetNextItemWidth(100)
	imgui.InputInt("##level", &p.jumpLevel)
	imgui.SameLine()
	if imgui.Button("Load level") {
		p.report(s.LoadLevel(int(p.jumpLevel) - 1))
	}
	if p.lastError != "" {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), p.lastError)
	}

	imgui.End()
}

func (p *SessionPanel) report(err error) {
	p.lastError = ""
	if err != nil {
		p.lastError = err.Error()
	}
}
