package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// styleCache holds one lipgloss style per RGBA colour seen so far.
type styleCache map[color.RGBA]lipgloss.Style

func (c styleCache) style(rgba color.RGBA) lipgloss.Style {
	if s, ok := c[rgba]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if rgba != (color.RGBA{}) {
		s = s.Foreground(lipgloss.Color(hexColor(rgba)))
	}
	c[rgba] = s
	return s
}

// hexColor formats a colour as "#rrggbb" for lipgloss.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
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

			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
