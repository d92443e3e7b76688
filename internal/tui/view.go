package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	ly := m.layout()

	// Header
	header := titleStyle.Render(" " + m.cfg.Title + " ─ " + m.title + " ")
	header = lipgloss.NewStyle().Width(ly.contentW).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(ly.sidebarW).Render(m.l.View())
	}

	var canvas string
	switch {
	case m.showTable:
		m.tbl.SetWidth(min(ly.canvasW-4, 48))
		m.tbl.SetHeight(min(ly.canvasH-2, 20))
		box := boxStyle.Render(m.tbl.View())
		canvas = lipgloss.Place(ly.canvasW, ly.canvasH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(ly.canvasW)
		m.ta.SetHeight(min(ly.canvasH, 12))
		canvas = lipgloss.NewStyle().Width(ly.canvasW).Height(ly.canvasH).Render(m.ta.View())
	default:
		canvas = lipgloss.NewStyle().Width(ly.canvasW).Height(ly.canvasH).Render(m.renderCanvas(ly.canvasW, ly.canvasH))
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvas)
	} else {
		body = canvas
	}

	// Footer / help
	st := dimStyle
	if strings.Contains(m.status, "error") {
		st = errStyle
	}
	status := st.Render(" " + m.status + " ")
	frame := dimStyle.Render(fmt.Sprintf("  frame %d  bbox [%g %g %g %g]  ", m.frames, m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY))
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	spacerW := max(0, ly.contentW-lipgloss.Width(left)-lipgloss.Width(frame))
	right := lipgloss.Place(spacerW+lipgloss.Width(frame), 1, lipgloss.Right, lipgloss.Center, frame)
	footer := lipgloss.NewStyle().Width(ly.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(ly.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Tab shapes",
		"Enter open",
		"p paste",
		"a points",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
