package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"rasterlab/internal/logging"
	"rasterlab/internal/scene"
	"rasterlab/internal/viewport"
)

// menuItem is either a built-in demo or a .shape file in the working directory.
type menuItem struct {
	title, desc string
	demoID      string
	path        string
}

func (f menuItem) Title() string       { return f.title }
func (f menuItem) Description() string { return f.desc }
func (f menuItem) FilterValue() string { return f.title }

func (m *Model) refreshItems() {
	var items []list.Item
	for _, d := range scene.Demos() {
		items = append(items, menuItem{title: d.Title, desc: d.Shape.String(), demoID: d.ID})
	}
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		logging.L().Warn("read dir", "dir", m.cwd, "err", err)
	}
	var files []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.ToLower(filepath.Ext(name)) != ".shape" {
			continue
		}
		files = append(files, menuItem{title: name, desc: "file", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(menuItem).Title() < files[j].(menuItem).Title() })
	m.items = append(items, files...)
	m.l.SetItems(m.items)
}

// open shows a demo by ID, or loads a .shape file when target is not a demo.
func (m *Model) open(target string) bool {
	if d, err := scene.LookupDemo(target); err == nil {
		return m.setShape(d.Title, d.Shape)
	}
	return m.loadPath(target)
}

// loadPath loads a shape description file into the model.
func (m *Model) loadPath(p string) bool {
	s, err := scene.Load(p)
	if err != nil {
		m.fail("load error", err)
		return false
	}
	return m.setShape(filepath.Base(p), s)
}

// setShape rasterizes s once and keeps its vertex buffer for every frame.
func (m *Model) setShape(title string, s scene.Shape) bool {
	res, err := s.Rasterize()
	if err != nil {
		m.fail("rasterize error", err)
		return false
	}
	m.title = title
	m.shape = s
	m.result = res
	m.verts = viewport.Vertices(res.Points, m.cfg.Size)
	m.bbox, _ = viewport.Bounds(res.Points)
	m.status = fmt.Sprintf("%s  %s  points=%d", title, s, len(res.Points))
	logging.L().Info("shape loaded", "title", title, "shape", s.String(), "points", len(res.Points), "primitive", s.Primitive.String())
	if m.showTable {
		m.refreshTable()
	}
	return true
}

func (m *Model) fail(what string, err error) {
	m.status = what + ": " + err.Error()
	logging.L().Warn(what, "err", err)
}
