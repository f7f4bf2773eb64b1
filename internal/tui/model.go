// Package tui is the terminal outline browser: the type listing and the
// field view of the selected type, with drill-down through object-typed
// fields and neighbor highlighting of the type under the cursor.
//
// The model runs inside the bubbletea event loop and is not safe for use
// from other goroutines.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/gqlvis/internal/cli/output"
	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/outline"
)

const (
	headerHeight = 2
	footerHeight = 2
)

// Config configures the browser.
type Config struct {
	// Title is shown in the header, usually the endpoint.
	Title string
	// Select is the type opened on start. Empty starts on the listing.
	Select string
	// Styles defaults to styles on the default lipgloss renderer.
	Styles *output.Styles
}

// Model is the bubbletea model of the browser.
type Model struct {
	outline   *outline.Outline
	listing   []outline.Entry
	highlight *graph.Highlight
	styles    *output.Styles
	keys      KeyMap
	help      help.Model
	viewport  viewport.Model
	title     string

	selection outline.Selection
	cursor    int

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a browser over o.
func New(o *outline.Outline, cfg Config) Model {
	styles := cfg.Styles
	if styles == nil {
		styles = output.NewStyles(lipgloss.DefaultRenderer())
	}
	m := Model{
		outline:   o,
		listing:   o.Listing(),
		highlight: graph.NewHighlight(o.Graph()),
		styles:    styles,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		title:     cfg.Title,
		selection: outline.NewSelection(cfg.Select),
	}
	m.hover()
	return m
}

// Selection returns the current selection.
func (m Model) Selection() outline.Selection {
	return m.selection
}

// Cursor returns the cursor row within the current view.
func (m Model) Cursor() int {
	return m.cursor
}

// Highlight returns the highlight state driven by the cursor.
func (m Model) Highlight() *graph.Highlight {
	return m.highlight
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		viewportHeight := max(m.height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.sync()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Top):
			m.move(-m.rows())
		case key.Matches(msg, m.keys.Bottom):
			m.move(m.rows())
		case key.Matches(msg, m.keys.Enter):
			m.open()
		case key.Matches(msg, m.keys.Home):
			m.home()
		}
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// detail returns the field view of the selected type.
func (m Model) detail() (outline.Detail, bool) {
	id, ok := m.selection.Current()
	if !ok {
		return outline.Detail{}, false
	}
	return m.outline.Detail(id)
}

// rows is the number of cursor positions in the current view.
func (m Model) rows() int {
	if _, ok := m.selection.Current(); !ok {
		return len(m.listing)
	}
	d, _ := m.detail()
	return len(d.Fields)
}

func (m *Model) move(delta int) {
	n := m.rows()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.hover()
}

// open selects the type under the cursor. In the field view only fields of
// object type can be followed.
func (m *Model) open() {
	if _, ok := m.selection.Current(); !ok {
		if m.cursor < len(m.listing) {
			m.selection.Select(m.listing[m.cursor].ID)
			m.cursor = 0
			m.hover()
		}
		return
	}
	d, ok := m.detail()
	if !ok || m.cursor >= len(d.Fields) {
		return
	}
	if m.selection.Follow(d, d.Fields[m.cursor].Name) {
		m.cursor = 0
		m.hover()
	}
}

// home clears the selection and puts the cursor on the type that was open.
func (m *Model) home() {
	id, ok := m.selection.Current()
	if !ok {
		return
	}
	m.selection.Clear()
	m.cursor = 0
	for i, e := range m.listing {
		if e.ID == id {
			m.cursor = i
			break
		}
	}
	m.hover()
}

// hover points the highlight at what the cursor is on: a type in the
// listing, or the link behind a field in the field view.
func (m *Model) hover() {
	g := m.outline.Graph()
	id, ok := m.selection.Current()
	if !ok {
		if m.cursor < len(m.listing) {
			n, _ := g.Node(m.listing[m.cursor].ID)
			m.highlight.HoverNode(n)
			return
		}
		m.highlight.HoverNode(nil)
		return
	}

	d, _ := m.detail()
	if m.cursor < len(d.Fields) {
		for _, l := range g.Outgoing(id) {
			if l.Name == d.Fields[m.cursor].Name {
				m.highlight.HoverLink(l)
				return
			}
		}
	}
	n, _ := g.Node(id)
	m.highlight.HoverNode(n)
}

// sync renders the body into the viewport and scrolls the cursor into view.
func (m *Model) sync() {
	if !m.ready {
		return
	}
	lines, cursorLine := m.body()
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

// body returns the lines of the current view and the line the cursor is on.
func (m Model) body() ([]string, int) {
	if _, ok := m.selection.Current(); ok {
		return m.detailLines()
	}
	return m.listingLines()
}

func (m Model) typeStyle(isRoot bool) lipgloss.Style {
	if isRoot {
		return m.styles.Root
	}
	return m.styles.Type
}

func (m Model) listingLines() ([]string, int) {
	g := m.outline.Graph()
	var (
		lines      []string
		cursorLine int
	)
	for i, e := range m.listing {
		marker := "  "
		if n, ok := g.Node(e.ID); ok && m.highlight.NodeHighlighted(n) {
			marker = m.styles.Highlight.Render("●") + " "
		}
		name := m.typeStyle(e.IsRoot).Render(e.ID)
		if i == m.cursor {
			name = m.styles.Selected.Render(e.ID)
			cursorLine = len(lines)
		}
		lines = append(lines, marker+name)
		for _, l := range e.Links {
			lines = append(lines, fmt.Sprintf("    %s: %s",
				m.styles.Field.Render(l.Field),
				m.styles.Muted.Render(outline.Text(l.Target, l.Modifiers))))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, m.styles.Muted.Render("No object types in this schema."))
	}
	return lines, cursorLine
}

func (m Model) detailLines() ([]string, int) {
	d, ok := m.detail()
	if !ok {
		return []string{m.styles.Muted.Render("Type not found in this schema.")}, 0
	}
	var (
		lines      []string
		cursorLine int
	)
	lines = append(lines, m.typeStyle(d.IsRoot).Render(d.ID))
	for i, f := range d.Fields {
		typ := outline.Text(f.Type, f.Modifiers)
		if f.Selectable {
			typ = m.styles.Type.Render(typ)
		} else {
			typ = m.styles.Muted.Render(typ)
		}
		name := m.styles.Field.Render(f.Name)
		if i == m.cursor {
			name = m.styles.Selected.Render(f.Name)
			cursorLine = len(lines)
		}
		lines = append(lines, "  "+name+": "+typ)
	}
	return lines, cursorLine
}

func (m Model) header() string {
	crumb := fmt.Sprintf("Types (%d)", len(m.listing))
	if id, ok := m.selection.Current(); ok {
		crumb = "Types › " + id
	}
	title := m.styles.Bold.Render("gqlvis")
	if m.title != "" {
		title += " " + m.styles.Muted.Render(m.title)
	}
	return title + "\n" + m.styles.Header.Render(crumb)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		lines, _ := m.body()
		b.WriteString(strings.Join(lines, "\n"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
