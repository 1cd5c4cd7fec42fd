package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/worldofbits/internal/core"
	"github.com/vovakirdan/worldofbits/internal/world"
)

const hudHeight = 2

// tokenColors maps token values to their display color.
var tokenColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightGreen,
	512:  core.ColorGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightMagenta,
}

func tokenColor(v int) core.Color {
	if c, ok := tokenColors[v]; ok {
		return c
	}
	return core.ColorMagenta
}

// view is the block of cells that fits on screen, centred on the player.
type view struct {
	top, left  int // Northernmost row, westernmost column
	rows, cols int
	x, y       int // Screen position of the top-left cell
}

// layout computes which cells fit on the screen.
func (g *Game) layout() (view, bool) {
	cw, ch := g.cfg.Display.CellWidth, g.cfg.Display.CellHeight
	rows := (g.screenH - hudHeight) / ch
	cols := g.screenW / cw
	if rows < 1 || cols < 1 {
		return view{}, false
	}

	p := g.session.PlayerCell()
	return view{
		top:  p.I + (rows-1)/2,
		left: p.J - (cols-1)/2,
		rows: rows,
		cols: cols,
		x:    (g.screenW - cols*cw) / 2,
		y:    hudHeight,
	}, true
}

// bounds returns the world region spanned by the view. Corners sit on cell
// centres so exactly rows x cols cells intersect it.
func (v view) bounds(grid *world.Grid) world.Bounds {
	return world.Bounds{
		Min: grid.Center(world.Cell{I: v.top - v.rows + 1, J: v.left}),
		Max: grid.Center(world.Cell{I: v.top, J: v.left + v.cols - 1}),
	}
}

// Render draws the map and HUD to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v, ok := g.layout()
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	player := g.session.PlayerCell()
	target := g.Target()
	for c := range g.session.VisibleCells(v.bounds(g.session.Grid())) {
		g.session.EnsureSpawned(c)
		st := g.session.CellState(c)

		x := v.x + (c.J-v.left)*g.cfg.Display.CellWidth
		y := v.y + (v.top-c.I)*g.cfg.Display.CellHeight
		g.renderCell(dst, x, y, st, c == player, g.aiming && c == target)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the status line and the message line.
func (g *Game) renderHUD(dst *core.Screen) {
	state := g.State()

	title := "World of Bits"
	if g.variant != "" {
		title += " (" + g.variant + ")"
	}
	dst.DrawTextColored(0, 0, title, core.ColorBrightCyan)

	hand := "empty"
	handColor := core.ColorGray
	if state.Holding != 0 {
		hand = strconv.Itoa(state.Holding)
		handColor = tokenColor(state.Holding)
	}
	x := len(title) + 3
	dst.DrawText(x, 0, "Holding:")
	dst.DrawTextColored(x+9, 0, hand, handColor)

	stats := fmt.Sprintf("Moves: %d  Cell: %s", state.Moves, g.session.PlayerCell())
	dst.DrawText(max(g.screenW-len(stats), x+9+len(hand)+3), 0, stats)

	switch {
	case g.message != "":
		dst.DrawTextColored(0, 1, g.message, g.messageColor)
	case state.Won:
		dst.DrawTextColored(0, 1, "Won! Press r for a new world", core.ColorBrightYellow)
	case g.aiming:
		dst.DrawTextColored(0, 1, "Aiming at "+g.Target().String(), core.ColorGray)
	}
}

// renderCell draws one cell as a box with its token value in the middle.
func (g *Game) renderCell(dst *core.Screen, x, y int, st world.CellState, isPlayer, isCursor bool) {
	cw, ch := g.cfg.Display.CellWidth, g.cfg.Display.CellHeight
	box := core.NewRect(x, y, cw, ch)
	midX, midY := box.Center()

	border := core.ColorGray
	switch {
	case isCursor:
		border = core.ColorBrightYellow
	case isPlayer:
		border = core.ColorBrightCyan
	case !st.Reachable:
		border = core.ColorDimGray
	}

	if ch >= 3 {
		dst.DrawBox(box, border)
	} else {
		dst.SetColored(x, midY, '[', border)
		dst.SetColored(box.Right()-1, midY, ']', border)
	}
	if isPlayer && ch >= 3 {
		dst.SetColored(midX, y, '@', core.ColorBrightCyan)
	}

	inner := cw - 2
	var text string
	color := core.ColorDimGray
	switch {
	case st.HasToken:
		text = strconv.Itoa(st.Value)
		color = tokenColor(st.Value)
		if !st.Reachable {
			color = core.ColorGray
		}
	case isPlayer && ch < 3:
		text = "@"
		color = core.ColorBrightCyan
	case st.Picked:
		text = "·"
	}
	runes := []rune(text)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	dst.DrawTextColored(x+1+(inner-len(runes))/2, midY, string(runes), color)
}
