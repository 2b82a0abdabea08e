package doodle

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Glyphs for world entities.
const (
	PlayerChar    = '█'
	PlatformChar  = '▀'
	BreakableChar = '▚'
	MovingChar    = '═'
	BouncyChar    = '▔'
	MonsterChar   = '▓'
	ShieldChar    = 'S'
	JetpackChar   = 'J'
)

// platformStyle returns the glyph and color for a platform kind.
func platformStyle(kind PlatformKind) (rune, core.Color) {
	switch kind {
	case PlatformBreakable:
		return BreakableChar, core.ColorOrange
	case PlatformMoving:
		return MovingChar, core.ColorCyan
	case PlatformBouncy:
		return BouncyChar, core.ColorMagenta
	default:
		return PlatformChar, core.ColorGreen
	}
}

// powerUpStyle returns the glyph and color for a power-up kind.
func powerUpStyle(kind PowerUpKind) (rune, core.Color) {
	if kind == PowerUpJetpack {
		return JetpackChar, core.ColorBrightYellow
	}
	return ShieldChar, core.ColorBrightBlue
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.minScreen()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	snap := g.ctl.Snapshot()
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight

	for _, p := range snap.Platforms {
		if p.Broken {
			continue
		}
		glyph, color := platformStyle(p.Kind)
		dst.DrawRect(project(p.Box, cw, ch), glyph, color)
	}

	for _, pu := range snap.PowerUps {
		glyph, color := powerUpStyle(pu.Kind)
		dst.DrawRect(project(pu.Box, cw, ch), glyph, color)
	}

	for _, m := range snap.Monsters {
		dst.DrawRect(project(m.Box, cw, ch), MonsterChar, core.ColorBrightRed)
	}

	dst.DrawRect(project(snap.Player.Box, cw, ch), PlayerChar, playerColor(snap.Player))

	// HUD is drawn over anything that scrolled into its row
	g.renderHUD(dst, snap)

	switch {
	case snap.State == StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// minScreen returns the smallest screen, in cells, that holds the minimum
// viewport plus the HUD.
func (g *Game) minScreen() (int, int) {
	w := int(math.Ceil(MinViewportW / g.cfg.Render.CellWidth))
	h := int(math.Ceil(MinViewportH/g.cfg.Render.CellHeight)) + hudRows
	return w, h
}

// project maps a world box to screen cells below the HUD.
func project(b core.Box, cellW, cellH float64) core.Rect {
	r := b.ToCells(cellW, cellH)
	r.Y += hudRows
	return r
}

func playerColor(p PlayerView) core.Color {
	switch {
	case p.HasShield && p.HasJetpack:
		return core.ColorBrightMagenta
	case p.HasShield:
		return core.ColorBrightBlue
	case p.HasJetpack:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightCyan
	}
}

// renderHUD draws score, active effects and the difficulty speed factor on
// the top row.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	if effects := effectsString(snap); effects != "" {
		dst.DrawTextCentered(0, effects)
	}

	if g.cfg.Difficulty.Enabled {
		speed := fmt.Sprintf("Speed: x%.1f", 1+snap.Difficulty*g.cfg.Difficulty.Scaling.SpeedMultiplier)
		dst.DrawText(dst.Width()-len(speed)-1, 0, speed)
	}
}

// effectsString lists running effects with their remaining whole seconds.
func effectsString(snap Snapshot) string {
	var parts []string
	if d := snap.EffectRemaining(PowerUpShield); d > 0 {
		parts = append(parts, fmt.Sprintf("SHIELD(%d)", int(math.Ceil(d.Seconds()))))
	}
	if d := snap.EffectRemaining(PowerUpJetpack); d > 0 {
		parts = append(parts, fmt.Sprintf("JETPACK(%d)", int(math.Ceil(d.Seconds()))))
	}
	return strings.Join(parts, " ")
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
