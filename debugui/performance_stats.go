package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/diceescape/engine"
)

// PerformanceStats plots frame times and lists per-system timings from the
// scheduler.
type PerformanceStats struct {
	scheduler *engine.Scheduler
	size      int
	history   frameHistory
	latency   map[string]*frameHistory
}

func NewPerformanceStats(scheduler *engine.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		size:      historyFrames,
		history:   newFrameHistory(historyFrames),
		latency:   make(map[string]*frameHistory),
	}
}

// recordLatency appends each system's last duration, in milliseconds, to
// its history.
func (ps *PerformanceStats) recordLatency(stats *engine.SchedulerStats) {
	for _, sys := range stats.Systems {
		h, ok := ps.latency[sys.Name]
		if !ok {
			fh := newFrameHistory(ps.size)
			h = &fh
			ps.latency[sys.Name] = h
		}
		h.record(float32(sys.LastDuration.Seconds() * 1000))
	}
}

func (ps *PerformanceStats) Render(frame *engine.Frame) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.history.record(float32(frame.DeltaTime * 1000))
	stats := ps.scheduler.GetStats()
	ps.recordLatency(stats)

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Systems: %d (%d executions)", stats.SystemCount, stats.TotalExecutions))

	avg := ps.history.average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	if imgui.BeginTabBar("PerfTabs") {
		if imgui.BeginTabItem("Frame Time") {
			frames := ps.history.ordered()
			imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("System Latency") {
			if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, 200), 0) {
				implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
				for _, sys := range stats.Systems {
					samples := ps.latency[sys.Name].ordered()
					implot.PlotLineFloatPtrInt(sys.Name, &samples[0], int32(len(samples)))
				}
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MinDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// frameHistory is a ring of frame times in milliseconds.
type frameHistory struct {
	samples []float32
	next    int
	filled  int
}

func newFrameHistory(size int) frameHistory {
	return frameHistory{samples: make([]float32, max(size, 1))}
}

func (h *frameHistory) record(ms float32) {
	h.samples[h.next] = ms
	h.next = (h.next + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// ordered returns the samples oldest first.
func (h *frameHistory) ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.next:])
	copy(out[n:], h.samples[:h.next])
	return out
}

// average is the mean of the recorded samples, ignoring unfilled slots.
func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range h.samples[:h.filled] {
		sum += ms
	}
	return sum / float32(h.filled)
}
