package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdHeadChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// styleFor returns the lipgloss style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// viewport scales world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(fieldW, fieldH int, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / float64(fieldW),
		sy: float64(dst.Height()) / float64(fieldH),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// span returns the cells covered by [lo, hi), at least one cell wide.
func span(lo, hi int) (int, int) {
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// Draw renders the whole frame: obstacles, bird, HUD and overlays.
func Draw(dst *core.Screen, rt *Runtime, menu *PauseMenu) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	s := rt.Session()
	cfg := s.Config()
	vp := newViewport(cfg.Field.Width, cfg.Field.Height, dst)

	for _, p := range s.Pairs() {
		drawPair(dst, vp, rt, p)
	}
	drawBird(dst, vp, rt)
	drawHUD(dst, rt.HUD())

	switch {
	case s.State() == game.StatePaused && !s.Resuming():
		if menu != nil {
			drawMenu(dst, menu)
		}
	case s.State() == game.StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Best: %d", s.Score(), s.Best()))
	}
}

func drawPair(dst *core.Screen, vp viewport, rt *Runtime, p game.Pair) {
	upper := rt.World().Bounds(p.Upper)
	lower := rt.World().Bounds(p.Lower)

	x0, x1 := span(vp.col(upper.Left()), vp.col(upper.Right()))
	gapTop := vp.row(upper.Bottom())
	gapBottom := vp.row(lower.Top())

	for x := x0; x < x1; x++ {
		dst.DrawVLine(x, 0, gapTop, PipeChar, core.ColorPipe)
		dst.DrawVLine(x, gapBottom, dst.Height()-gapBottom, PipeChar, core.ColorPipe)
	}
	if gapTop > 0 {
		dst.DrawHLine(x0, gapTop-1, x1-x0, PipeCapTop, core.ColorPipeCap)
	}
	dst.DrawHLine(x0, gapBottom, x1-x0, PipeCapBottom, core.ColorPipeCap)
}

func drawBird(dst *core.Screen, vp viewport, rt *Runtime) {
	box := rt.World().Bounds(rt.Session().Actor())
	x0, x1 := span(vp.col(box.Left()), vp.col(box.Right()))
	y0, y1 := span(vp.row(box.Top()), vp.row(box.Bottom()))

	color := core.ColorBird
	if rt.HUD().Hit() {
		color = core.ColorCrashed
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r := BirdChar
			if x == x1-1 && y == y0 {
				r = BirdHeadChar
			}
			dst.SetColored(x, y, r, color)
		}
	}
}

func drawHUD(dst *core.Screen, hud *HUD) {
	dst.DrawTextColored(1, 0, " "+hud.Text(game.NodeScore)+" ", core.ColorScore)
	dst.DrawTextColored(1, 1, " "+hud.Text(game.NodeBest)+" ", core.ColorBest)

	if countdown := hud.Text(game.NodeCountdown); countdown != "" {
		dst.DrawTextCentered(dst.Height()/2, countdown, core.ColorCountdown)
	}
}

func drawMenu(dst *core.Screen, menu *PauseMenu) {
	lines := []string{"PAUSED", ""}
	for i, item := range menu.Items() {
		cursor := "  "
		if i == menu.Cursor() {
			cursor = "> "
		}
		lines = append(lines, cursor+item)
	}
	drawBox(dst, lines)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	drawBox(dst, []string{title, "", subtitle})
}

func drawBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ')
	dst.DrawBox(rect)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}
