// Package tui provides the interactive galaxy explorer: a word list driven
// by the timeline filter, with a satellite panel for the selected word.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/lepinkainen/nebula/internal/session"
)

const (
	defaultListWidth  = 48
	defaultListHeight = 16
	yearStep          = 10
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// bound marks which end of the year range the arrow keys adjust.
type bound int

const (
	boundStart bound = iota
	boundEnd
)

type wordItem struct {
	index int
	word  scene.Word
}

func (i wordItem) Title() string {
	return fmt.Sprintf("%s (%d)", i.word.Text, i.word.Frequency)
}

func (i wordItem) FilterValue() string { return i.word.Text }

func (i wordItem) Description() string {
	return fmt.Sprintf("%d books", len(i.word.Books))
}

type wordDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	faint    lipgloss.Style
}

func newWordDelegate() wordDelegate {
	return wordDelegate{
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
	}
}

func (d wordDelegate) Height() int                         { return 2 }
func (d wordDelegate) Spacing() int                        { return 0 }
func (d wordDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d wordDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	wi, ok := item.(wordItem)
	if !ok {
		return
	}

	titleStyle := d.normal
	if idx == m.Index() {
		titleStyle = d.selected
	}

	_, _ = fmt.Fprintf(w, "%s\n%s",
		titleStyle.Render(wi.Title()),
		d.faint.Render(wi.Description()))
}

type explorerModel struct {
	state  *session.State
	list   list.Model
	active bound
	err    error
}

func newExplorerModel(state *session.State) *explorerModel {
	l := list.New(nil, newWordDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle().Faint(true)

	m := &explorerModel{state: state, list: l}
	m.refreshItems()
	return m
}

// refreshItems rebuilds the word list from the currently visible words.
func (m *explorerModel) refreshItems() {
	visible := m.state.VisibleWords()
	items := make([]list.Item, 0, len(visible))
	for _, idx := range visible {
		items = append(items, wordItem{index: idx, word: m.state.Scene.Words[idx]})
	}
	m.list.SetItems(items)
}

func (m *explorerModel) Init() tea.Cmd { return nil }

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(wordItem); ok {
				m.err = m.state.Select(item.index)
			}
			return m, nil
		case "esc":
			m.state.ClearSelection()
			return m, nil
		case "tab":
			if m.active == boundStart {
				m.active = boundEnd
			} else {
				m.active = boundStart
			}
			return m, nil
		case "left", "right":
			m.adjustYear(msg.String() == "right")
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width/2, msg.Height-8)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *explorerModel) adjustYear(up bool) {
	step := -yearStep
	if up {
		step = yearStep
	}

	if m.active == boundStart {
		m.state.SetStartYear(m.state.Range.Start + step)
	} else {
		m.state.SetEndYear(m.state.Range.End + step)
	}
	m.refreshItems()
}

func (m *explorerModel) View() string {
	header := headerStyle.Render("nebula explorer")
	timeline := m.timelineView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.selectionView())
	help := helpStyle.Render("up/down words | enter select | esc close | tab+left/right years | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, timeline, body, help)
}

func (m *explorerModel) timelineView() string {
	start := fmt.Sprintf("%d", m.state.Range.Start)
	end := fmt.Sprintf("%d", m.state.Range.End)
	if m.active == boundStart {
		start = activeBoundStyle.Render(start)
	} else {
		end = activeBoundStyle.Render(end)
	}
	return timelineStyle.Render(fmt.Sprintf("years %s - %s | %d words visible", start, end, len(m.list.Items())))
}

func (m *explorerModel) selectionView() string {
	sel := m.state.Selection()
	if sel == nil {
		return panelStyle.Render("no word selected")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", panelTitleStyle.Render(sel.Word))
	if len(sel.Satellites) == 0 {
		b.WriteString("no books in range")
	}
	for _, sat := range sel.Satellites {
		overlay := scene.NewOverlay(sat.Book)
		fmt.Fprintf(&b, "* %s (%s)\n", overlay.Title, overlay.Year)
	}
	return panelStyle.Render(b.String())
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")).
			MarginBottom(1)

	timelineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			MarginBottom(1)

	activeBoundStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("252"))

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Explore runs the interactive explorer over a loaded scene until the user
// quits.
func Explore(state *session.State) error {
	_, err := runProgram(newExplorerModel(state))
	return err
}
