package tui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// layout is the screen split shared by View and Update.
type layout struct {
	contentW, contentH int
	sidebarW           int
	canvasW, canvasH   int
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) layout() layout {
	var ly layout
	if m.showSidebar {
		ly.sidebarW = sidebarWidth
	}
	ly.contentH = max(4, m.height-headerHeight-footerHeight)
	ly.contentW = max(10, m.width)
	ly.canvasW = max(10, ly.contentW-ly.sidebarW-1)
	ly.canvasH = ly.contentH
	return ly
}
