package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coretilus/internal/core"
)

// ScreenStyle returns the style used to paint frames. An empty color keeps
// the terminal's default foreground.
func ScreenStyle(color string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style
}

// RenderScreen converts a screen buffer to a styled string for display.
// Blank runs are left unstyled to keep escape sequences short.
func RenderScreen(s *core.Screen, style lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	plain := style.GetForeground() == lipgloss.NoColor{}
	for row := range s.Height() {
		if row > 0 {
			sb.WriteRune('\n')
		}
		line := []rune(s.Row(row))
		if plain {
			sb.WriteString(string(line))
			continue
		}

		x := 0
		for x < len(line) {
			blank := line[x] == ' '
			start := x
			for x < len(line) && (line[x] == ' ') == blank {
				x++
			}
			run := string(line[start:x])
			if blank {
				sb.WriteString(run)
			} else {
				sb.WriteString(style.Render(run))
			}
		}
	}
	return sb.String()
}
