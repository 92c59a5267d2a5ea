package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/diceescape/engine"
)

// TileInspector shows the tile selected in a BoardInspector.
type TileInspector struct {
	board *BoardInspector
}

func NewTileInspector(board *BoardInspector) *TileInspector {
	return &TileInspector{board: board}
}

func (ti *TileInspector) Render(*engine.Frame) {
	if !imgui.BeginV("Tile Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	tile := ti.board.Selected()
	if tile == nil {
		imgui.Text("No tile selected")
		imgui.End()
		return
	}

	info := describe(tile)
	pos := tile.Position()
	imgui.Text(fmt.Sprintf("Cell: %d,%d", info.Cell.X, info.Cell.Z))
	imgui.Text(fmt.Sprintf("Kind: %s", info.Kind))
	imgui.Text(fmt.Sprintf("Position: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z))
	imgui.Text(fmt.Sprintf("Walkable: %t  Visible: %t", info.Walkable, info.Visible))
	if info.State != "" {
		imgui.Text(fmt.Sprintf("State: %s", info.State))
	}

	if fields := globalReflectionCache.FieldValues(tile); len(fields) > 0 && imgui.TreeNodeStr("Fields") {
		for _, kv := range fields {
			imgui.BulletText(fmt.Sprintf("%s: %s", kv[0], kv[1]))
		}
		imgui.TreePop()
	}

	imgui.End()
}
