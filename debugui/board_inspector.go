package debugui

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
)

// TileInfo is one row of the board inspector.
type TileInfo struct {
	Cell     game.Cell
	Kind     game.Kind
	Walkable bool
	Visible  bool
	Group    int
	State    string
	Tile     game.Tile
}

// BoardInspector lists the tiles of the current grid. Rows can be filtered
// by text and sorted by column; selecting a row feeds the tile inspector.
type BoardInspector struct {
	session *game.Session

	grid          *game.Grid
	tiles         []TileInfo
	filterText    string
	sortColumn    int
	sortAscending bool
	selected      game.Cell
	hasSelection  bool
}

func NewBoardInspector(session *game.Session) *BoardInspector {
	return &BoardInspector{session: session, sortAscending: true}
}

func (b *BoardInspector) Render(*engine.Frame) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b.refresh()
	b.renderMap()
	imgui.Separator()

	imgui.InputTextWithHint("##filter", "Filter...", &b.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		b.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("Tiles", 5, tableFlags, imgui.NewVec2(0, 300), 0) {
		imgui.TableSetupColumn("Cell")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Walkable")
		imgui.TableSetupColumn("Group")
		imgui.TableSetupColumn("State")
		imgui.TableHeadersRow()

		specs := imgui.TableGetSortSpecs()
		if specs.SpecsDirty() && specs.SpecsCount() > 0 {
			spec := specs.Specs()
			b.sortColumn = int(spec.ColumnIndex())
			b.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortTiles(b.tiles, b.sortColumn, b.sortAscending)
			specs.SetSpecsDirty(false)
		}

		for _, info := range filterTiles(b.tiles, b.filterText) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			selected := b.hasSelection && b.selected == info.Cell
			label := fmt.Sprintf("%d,%d", info.Cell.X, info.Cell.Z)
			if imgui.SelectableBoolV(label, selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				b.Select(info.Cell)
			}
			imgui.TableNextColumn()
			imgui.Text(info.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%t", info.Walkable))
			imgui.TableNextColumn()
			if info.Group > 0 {
				imgui.Text(fmt.Sprintf("%d", info.Group))
			}
			imgui.TableNextColumn()
			imgui.Text(info.State)
		}
		imgui.EndTable()
	}

	imgui.End()
}

// renderMap draws the grid as rows of symbols with the die marked.
func (b *BoardInspector) renderMap() {
	if b.grid == nil {
		imgui.Text("No level loaded")
		return
	}
	die := b.session.DieCell()
	for _, row := range boardRows(b.grid, die) {
		imgui.Text(row)
	}
}

// refresh rebuilds the rows when a new grid was loaded and updates the
// dynamic columns otherwise.
func (b *BoardInspector) refresh() {
	grid := b.session.Grid()
	if grid != b.grid {
		b.grid = grid
		b.tiles = nil
		b.hasSelection = false
		if grid != nil {
			b.tiles = collectTiles(grid)
			sortTiles(b.tiles, b.sortColumn, b.sortAscending)
		}
		return
	}
	for i := range b.tiles {
		b.tiles[i] = describe(b.tiles[i].Tile)
	}
}

// Select marks the tile at cell for the tile inspector.
func (b *BoardInspector) Select(cell game.Cell) {
	b.selected = cell
	b.hasSelection = true
}

// Selected returns the selected tile, or nil.
func (b *BoardInspector) Selected() game.Tile {
	if !b.hasSelection || b.grid == nil {
		return nil
	}
	return b.grid.AtCell(b.selected)
}

func collectTiles(grid *game.Grid) []TileInfo {
	var infos []TileInfo
	for tile := range grid.All() {
		infos = append(infos, describe(tile))
	}
	return infos
}

func describe(tile game.Tile) TileInfo {
	info := TileInfo{
		Cell:     tile.Cell(),
		Kind:     tile.Kind(),
		Walkable: tile.Walkable(),
		Visible:  tile.Visible(),
		Tile:     tile,
	}
	if g, ok := tile.(interface{ Group() int }); ok {
		info.Group = g.Group()
	}

	switch t := tile.(type) {
	case *game.GoalTile:
		info.State = fmt.Sprintf("needs %d", t.Required)
	case *game.SwitchTile:
		info.State = fmt.Sprintf("needs %d", t.Required)
		if t.Activated() {
			info.State += ", activated"
		}
	case *game.SpikeTile:
		info.State = "retracted"
		if t.Extended() {
			info.State = "extended"
		}
	case *game.FloatingBlockTile:
		info.State = "lowered"
		if t.Raised() {
			info.State = "raised"
		}
	case *game.FallingTile:
		switch {
		case !t.Visible():
			info.State = "gone"
		case t.Falling():
			info.State = "falling"
		case t.Triggered():
			info.State = "armed"
		}
	case *game.WarpTile:
		info.State = fmt.Sprintf("to %d,%d", t.Dest[0], t.Dest[1])
		if t.JustWarped() {
			info.State += ", guarded"
		}
	case *game.CoinTile:
		info.State = fmt.Sprintf("%d points", t.Value)
		if t.Collected() {
			info.State = "collected"
		}
	}
	return info
}

func filterTiles(tiles []TileInfo, text string) []TileInfo {
	if text == "" {
		return tiles
	}
	needle := strings.ToLower(text)
	var out []TileInfo
	for _, info := range tiles {
		hay := strings.ToLower(fmt.Sprintf("%d,%d %s %s", info.Cell.X, info.Cell.Z, info.Kind, info.State))
		if strings.Contains(hay, needle) {
			out = append(out, info)
		}
	}
	return out
}

func sortTiles(tiles []TileInfo, column int, ascending bool) {
	slices.SortStableFunc(tiles, func(a, b TileInfo) int {
		var c int
		switch column {
		case 1:
			c = int(a.Kind) - int(b.Kind)
		case 2:
			c = boolOrder(a.Walkable) - boolOrder(b.Walkable)
		case 3:
			c = a.Group - b.Group
		case 4:
			c = strings.Compare(a.State, b.State)
		}
		if c == 0 {
			c = a.Cell.Z - b.Cell.Z
		}
		if c == 0 {
			c = a.Cell.X - b.Cell.X
		}
		if !ascending {
			return -c
		}
		return c
	})
}

func boolOrder(b bool) int {
	if b {
		return 1
	}
	return 0
}

var kindSymbols = map[game.Kind]rune{
	game.KindPlain:         '.',
	game.KindWall:          '#',
	game.KindDeath:         'X',
	game.KindGoal:          'G',
	game.KindSwitch:        'S',
	game.KindSpike:         '^',
	game.KindFalling:       '~',
	game.KindFloatingBlock: 'B',
	game.KindWarp:          'W',
	game.KindCoin:          '$',
}

// boardRows renders grid as text, one string per row, with '@' on die.
func boardRows(grid *game.Grid, die game.Cell) []string {
	rows := make([]string, grid.Depth())
	for z := range grid.Depth() {
		var sb strings.Builder
		for x := range grid.Width() {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := game.Cell{X: x, Z: z}
			tile := grid.AtCell(cell)
			switch {
			case cell == die:
				sb.WriteRune('@')
			case tile == nil || !tile.Visible():
				sb.WriteRune(' ')
			default:
				sb.WriteRune(kindSymbols[tile.Kind()])
			}
		}
		rows[z] = sb.String()
	}
	return rows
}

// formatValue prints a field value for the inspector.
func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return v.Kind().String()
}
