package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tavrel/runline/internal/config"
	"github.com/tavrel/runline/internal/core"
	"github.com/tavrel/runline/internal/game"
)

// Visual characters for rendering
const (
	RunnerBody = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	RockChar   = '▓'
	HoleChar   = '▁'
	GroundChar = '═'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
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
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// unitsPerRow controls the vertical scale: how many distance-units one
// terminal row covers. A full jump arc spans about sixteen rows.
const unitsPerRow = 8.0

// WorldRenderer projects simulation snapshots onto a character screen.
// The world is measured in distance-units; the renderer owns the mapping
// from units to cells.
type WorldRenderer struct {
	cfg *config.Config
}

// NewWorldRenderer creates a renderer for the given tunables.
func NewWorldRenderer(cfg *config.Config) *WorldRenderer {
	return &WorldRenderer{cfg: cfg}
}

// Draw renders the world of a snapshot onto the screen. legFrame drives the
// running animation and should advance once per simulation tick.
func (r *WorldRenderer) Draw(dst *core.Screen, snap game.Snapshot, legFrame int) {
	dst.Clear()

	groundRow := dst.Height() - 2
	if groundRow < 3 {
		groundRow = dst.Height() - 1
	}
	scaleX := float64(dst.Width()) / r.cfg.World.Width

	// Ground first so holes can punch through it
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, obs := range snap.Obstacles {
		r.drawObstacle(dst, obs, groundRow, scaleX)
	}

	r.drawRunner(dst, snap.PlayerY, groundRow, scaleX, legFrame)
	r.drawHUD(dst, snap)
}

// drawObstacle renders a single obstacle at its scaled horizontal position.
func (r *WorldRenderer) drawObstacle(dst *core.Screen, obs game.Obstacle, groundRow int, scaleX float64) {
	col := int(math.Round(obs.X * scaleX))

	switch obs.Kind {
	case game.KindRock:
		width := cellSpan(r.cfg.Obstacles.Rock.Width, scaleX)
		for dx := range width {
			dst.SetCell(col+dx, groundRow-1, core.Cell{Rune: RockChar, Color: core.ColorOrange})
			dst.SetCell(col+dx, groundRow-2, core.Cell{Rune: RockChar, Color: core.ColorOrange})
		}
	case game.KindHole:
		width := cellSpan(r.cfg.Obstacles.Hole.Width, scaleX)
		for dx := range width {
			dst.SetCell(col+dx, groundRow, core.Cell{Rune: HoleChar, Color: core.ColorRed})
		}
	}
}

// drawRunner renders the player sprite. The hitbox lives in the simulation;
// the sprite is a fixed three-row figure like the rest of the scene.
func (r *WorldRenderer) drawRunner(dst *core.Screen, playerY float64, groundRow int, scaleX float64, legFrame int) {
	col := int(math.Round(r.cfg.Player.X * scaleX))
	lift := int(math.Round(playerY / unitsPerRow))
	baseRow := groundRow - 1 - lift // Row of the legs

	// Head and torso
	dst.SetCell(col+1, baseRow-2, core.Cell{Rune: RunnerHead, Color: core.ColorCyan})
	dst.SetCell(col+2, baseRow-2, core.Cell{Rune: RunnerBody, Color: core.ColorCyan})
	for dx := range 3 {
		dst.SetCell(col+dx, baseRow-1, core.Cell{Rune: RunnerBody, Color: core.ColorCyan})
	}

	// Legs, animated while grounded
	if lift == 0 {
		if legFrame%10 < 5 {
			dst.SetCell(col, baseRow, core.Cell{Rune: RunnerLeg1, Color: core.ColorCyan})
			dst.SetCell(col+2, baseRow, core.Cell{Rune: RunnerLeg2, Color: core.ColorCyan})
		} else {
			dst.SetCell(col, baseRow, core.Cell{Rune: RunnerLeg2, Color: core.ColorCyan})
			dst.SetCell(col+2, baseRow, core.Cell{Rune: RunnerLeg1, Color: core.ColorCyan})
		}
	} else {
		dst.SetCell(col, baseRow, core.Cell{Rune: RunnerLeg1, Color: core.ColorCyan})
		dst.SetCell(col+2, baseRow, core.Cell{Rune: RunnerLeg2, Color: core.ColorCyan})
	}
}

// drawHUD renders the score line along the top edge.
func (r *WorldRenderer) drawHUD(dst *core.Screen, snap game.Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %d ", snap.Distance))

	hi := fmt.Sprintf(" Best: %d ", snap.HighScore)
	dst.DrawTextColored(dst.Width()-len(hi)-2, 0, hi, core.ColorYellow)
}

// DrawEndedOverlay renders the post-collision message box over the frozen world.
func (r *WorldRenderer) DrawEndedOverlay(dst *core.Screen, snap game.Snapshot) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Distance: %d   Best: %d", snap.Distance, snap.HighScore),
	}
	if snap.CanRestart {
		lines = append(lines, "Press Space to run again  |  Esc for menu")
	} else {
		lines = append(lines, fmt.Sprintf("Restart in %d...", snap.CooldownRemaining))
	}

	boxW := 0
	for _, l := range lines {
		if len(l)+6 > boxW {
			boxW = len(l) + 6
		}
	}
	boxH := len(lines) + 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		dst.DrawTextCentered(y+2+i, l)
	}
}

// cellSpan converts a width in distance-units to a cell count, at least one.
func cellSpan(units, scaleX float64) int {
	n := int(math.Round(units * scaleX))
	if n < 1 {
		n = 1
	}
	return n
}
