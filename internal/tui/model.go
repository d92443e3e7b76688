package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/math/f32"

	"rasterlab/internal/config"
	"rasterlab/internal/scene"
	"rasterlab/internal/viewport"
)

type Model struct {
	cfg config.Config

	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	frames int

	// Demo and file picker
	cwd   string
	l     list.Model
	items []list.Item

	// Current shape. verts is computed once per shape, never per frame.
	title  string
	shape  scene.Shape
	result scene.Result
	verts  []f32.Vec2
	bbox   viewport.BBox

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// point table
	showTable bool
	tbl       table.Model

	canvasStyle lipgloss.Style
}

// frameMsg drives the idle render loop.
type frameMsg time.Time

func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		helpVisible: true,
		status:      "rasterlab ready",
		canvasStyle: lipgloss.NewStyle().
			Foreground(hexColor(cfg.DrawColor)).
			Background(hexColor(cfg.ClearColor)),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Shapes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Describe one shape, e.g. LINE(100 100, 500 500), CIRCLE(400 400, 200), ELLIPSE(400 400, 200 150). Enter renders; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshItems()

	target := cfg.Target
	if target == "" {
		target = scene.Demos()[0].ID
	}
	if !m.open(target) && m.verts == nil {
		status := m.status
		m.open(scene.Demos()[0].ID)
		m.status = status
	}
	return m
}

func (m Model) Init() tea.Cmd { return tick(m.cfg.FPS) }

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
