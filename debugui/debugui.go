// Package debugui provides Dear ImGui inspector windows for a running game
// session. Windows are drawn by an engine system, so they render inside the
// host's ImGui frame on every tick.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
)

// Window is an ImGui window drawn once per frame.
type Window interface {
	Render(frame *engine.Frame)
}

// WindowFunc adapts a plain function to Window.
type WindowFunc func(frame *engine.Frame)

func (f WindowFunc) Render(frame *engine.Frame) { f(frame) }

// InputState tracks whether ImGui is consuming mouse or keyboard input. Hosts
// check it before forwarding input to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System updates Input and defers every window's render until the other
// systems of the tick have run.
type System struct {
	Windows []Window
	Input   InputState
	Hidden  bool
}

func (s *System) Execute(frame *engine.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if s.Hidden {
		return
	}
	for _, w := range s.Windows {
		frame.Commands.Defer(func() { w.Render(frame) })
	}
}

// Add appends windows to the system.
func (s *System) Add(windows ...Window) {
	s.Windows = append(s.Windows, windows...)
}

// Toggle shows or hides every window.
func (s *System) Toggle() {
	s.Hidden = !s.Hidden
}

// New returns a system with the standard windows for session: controls,
// board inspector and scheduler performance.
func New(session *game.Session, scheduler *engine.Scheduler) *System {
	sys := &System{}
	board := NewBoardInspector(session)
	sys.Add(
		NewSessionPanel(session),
		board,
		NewTileInspector(board),
		NewPerformanceStats(scheduler, 120),
	)
	return sys
}
