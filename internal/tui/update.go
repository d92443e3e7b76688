package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"rasterlab/internal/logging"
	"rasterlab/internal/scene"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		// the frame only triggers a redraw; the vertex buffer is reused
		m.frames++
		return m, tick(m.cfg.FPS)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				s, err := scene.Parse(text)
				if err != nil {
					m.fail("shape error", err)
					return m, nil
				}
				if m.setShape("pasted "+s.Name, s) {
					m.pasteMode = false
					m.ta.Blur()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "a", "esc":
				m.showTable = false
				m.tbl.Blur()
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			logging.L().Info("quit", "frames", m.frames)
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshItems()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
			if m.showTable {
				m.tbl.Focus()
				m.status = fmt.Sprintf("point table: %d rows", len(m.result.Points))
			}
			return m, nil
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(menuItem); ok {
					if it.demoID != "" {
						m.open(it.demoID)
					} else {
						m.loadPath(it.path)
					}
				}
				return m, nil
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
