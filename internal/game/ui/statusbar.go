// Package ui provides the console status readout (score, HP and shield bars).
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// BarLength is the number of segments in the HP and shield bars.
const BarLength = 20

// Bar glyphs.
const (
	HeartGlyph  = "♥"
	ShieldGlyph = "🛡"
	EmptyGlyph  = "."
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// StatusBar prints score, HP and shield to a console.
type StatusBar struct {
	out        io.Writer
	isTerminal bool

	scoreStyle  lipgloss.Style
	hpStyle     lipgloss.Style
	shieldStyle lipgloss.Style
	bannerStyle lipgloss.Style
}

// NewStatusBar creates a status bar writing to out. The screen is only
// cleared between prints when out is a terminal.
func NewStatusBar(out io.Writer) *StatusBar {
	r := lipgloss.NewRenderer(out)

	sb := &StatusBar{
		out:         out,
		scoreStyle:  r.NewStyle().Foreground(lipgloss.Color("3")),
		hpStyle:     r.NewStyle().Foreground(lipgloss.Color("1")),
		shieldStyle: r.NewStyle().Foreground(lipgloss.Color("4")),
		bannerStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
	if f, ok := out.(*os.File); ok {
		sb.isTerminal = term.IsTerminal(int(f.Fd()))
	}
	return sb
}

// Render prints the three status lines. hp and shield are clamped to [0, 100].
func (sb *StatusBar) Render(score int, hp, shield float32) error {
	hp = clampPercent(hp)
	shield = clampPercent(shield)

	var b strings.Builder
	if sb.isTerminal {
		b.WriteString(clearScreen)
	}
	b.WriteString(sb.scoreStyle.Render(fmt.Sprintf("Score: %d", score)))
	b.WriteByte('\n')
	b.WriteString(sb.hpStyle.Render(fmt.Sprintf("HP:     [%s] %d%%", Bar(hp, HeartGlyph), int(hp))))
	b.WriteByte('\n')
	b.WriteString(sb.shieldStyle.Render(fmt.Sprintf("SHIELD: [%s] %d%%", Bar(shield, ShieldGlyph), int(shield))))
	b.WriteByte('\n')

	_, err := io.WriteString(sb.out, b.String())
	return err
}

// GameOver prints the end-of-game banner below the last status.
func (sb *StatusBar) GameOver() error {
	_, err := fmt.Fprintln(sb.out, sb.bannerStyle.Render("GAME OVER!"))
	return err
}

// Bar draws a BarLength segment bar for a 0-100 value.
func Bar(value float32, glyph string) string {
	filled := FilledSegments(value)
	return strings.Repeat(glyph, filled) + strings.Repeat(EmptyGlyph, BarLength-filled)
}

// FilledSegments returns how many of the BarLength segments a 0-100 value fills.
func FilledSegments(value float32) int {
	return int(clampPercent(value) / 100 * BarLength)
}

func clampPercent(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
