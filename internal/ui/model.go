package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/curtaincall/internal/catalog"
	"github.com/faizmokh/curtaincall/internal/clip"
	"github.com/faizmokh/curtaincall/internal/selection"
)

// CopiedFeedback is how long copy confirmations stay on screen.
const CopiedFeedback = 1500 * time.Millisecond

// Model owns Bubble Tea state for the catalog browser.
type Model struct {
	ctx       context.Context
	store     *catalog.Store
	clipboard clip.Writer

	entries  []catalog.Entry
	rows     []catalog.Row
	selected selection.Set

	search    textinput.Model
	searching bool
	help      help.Model
	keys      keyMap

	cursor int
	offset int

	loading    bool
	statusLine string
	errorLine  string

	copiedKey string
	copiedAll bool
	flashID   int

	width  int
	height int
}

type catalogLoadedMsg struct {
	entries []catalog.Entry
	err     error
}

type copyResultMsg struct {
	key   string
	all   bool
	count int
	err   error
}

type clearCopiedMsg struct {
	id int
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, store *catalog.Store, clipboard clip.Writer) Model {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "show, tour, date, master, link or folder"
	search.CharLimit = 200

	return Model{
		ctx:        ctx,
		store:      store,
		clipboard:  clipboard,
		search:     search,
		help:       help.New(),
		keys:       defaultKeyMap(),
		loading:    true,
		statusLine: "Loading collection...",
	}
}

// Init loads the catalog.
func (m Model) Init() tea.Cmd {
	return m.loadCatalogCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(10, msg.Width-len(m.search.Prompt)-2)
		m.ensureCursorVisible()
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)
	case copyResultMsg:
		return m.handleCopyResult(msg)
	case clearCopiedMsg:
		if msg.id == m.flashID {
			m.copiedKey = ""
			m.copiedAll = false
		}
		return m, nil
	default:
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.tableHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.tableHeight())
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.rows))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.rows))
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.statusLine = ""
		m.errorLine = ""
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleCurrent()
	case key.Matches(msg, m.keys.ToggleAll):
		return m.toggleAll()
	case key.Matches(msg, m.keys.ClearSel):
		m.selected = selection.New()
		m.statusLine = "Selection cleared."
		m.errorLine = ""
	case key.Matches(msg, m.keys.Copy):
		return m.copyCurrent()
	case key.Matches(msg, m.keys.CopyAll):
		return m.copySelected()
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.statusLine = "Reloading collection..."
		m.errorLine = ""
		return m, m.loadCatalogCmd()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case msg.String() == "esc" && m.search.Value() != "":
		m.search.SetValue("")
		m.applyFilter()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Apply):
		m.searching = false
		m.search.Blur()
		m.statusLine = fmt.Sprintf("%d match%s.", len(m.rows), pluralES(len(m.rows)))
		return m, nil
	case key.Matches(msg, m.keys.CancelEdit):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// applyFilter rebuilds the visible rows from the full catalog and the
// current search value.
func (m *Model) applyFilter() {
	var currentKey string
	if row, ok := m.currentRow(); ok {
		currentKey = row.Key
	}

	m.rows = catalog.BuildRows(m.entries, m.search.Value())

	m.cursor = 0
	for i, row := range m.rows {
		if row.Key == currentKey {
			m.cursor = i
			break
		}
	}
	m.offset = 0
	m.ensureCursorVisible()
}

func (m Model) handleCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.entries = nil
		m.rows = nil
		m.statusLine = ""
		if errors.Is(msg.err, catalog.ErrCatalogNotFound) {
			m.errorLine = fmt.Sprintf("No collection found at %s (run `curtaincall export` first).", m.store.Path())
		} else {
			m.errorLine = fmt.Sprintf("Failed to load collection: %v", msg.err)
		}
		return m, nil
	}

	m.entries = msg.entries
	m.applyFilter()

	// Keep selected rows in sync with the reloaded catalog.
	index := catalog.IndexRows(catalog.BuildRows(m.entries, ""))
	refreshed := selection.New()
	for _, row := range m.selected.Rows() {
		if fresh, ok := index[row.Key]; ok {
			refreshed = refreshed.With(fresh, true)
		}
	}
	m.selected = refreshed

	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Loaded %d recording%s.", len(m.entries), pluralS(len(m.entries)))
	return m, nil
}

func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	m.selected = m.selected.Toggle(row)
	m.errorLine = ""
	if m.selected.Has(row.Key) {
		m.statusLine = "Selected " + row.SummaryLine()
	} else {
		m.statusLine = "Deselected " + row.SummaryLine()
	}
	m.ensureCursorVisible()
	return m, nil
}

func (m Model) toggleAll() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	checked := !m.selected.AllSelected(m.rows)
	m.selected = m.selected.SetAll(m.rows, checked)
	m.errorLine = ""
	if checked {
		m.statusLine = fmt.Sprintf("Selected %d visible row%s.", len(m.rows), pluralS(len(m.rows)))
	} else {
		m.statusLine = fmt.Sprintf("Deselected %d visible row%s.", len(m.rows), pluralS(len(m.rows)))
	}
	m.ensureCursorVisible()
	return m, nil
}

func (m Model) copyCurrent() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	m.errorLine = ""
	return m, m.copyCmd(row.Key, false, 1, row.CopyText())
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	if m.selected.Len() == 0 {
		m.statusLine = "Nothing selected."
		m.errorLine = ""
		return m, nil
	}
	m.errorLine = ""
	return m, m.copyCmd("", true, m.selected.Len(), m.selected.CopyText())
}

func (m Model) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Copy failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.flashID++
	m.errorLine = ""
	if msg.all {
		m.copiedAll = true
		m.copiedKey = ""
		m.statusLine = fmt.Sprintf("Copied %d recording%s to clipboard.", msg.count, pluralS(msg.count))
	} else {
		m.copiedKey = msg.key
		m.copiedAll = false
		m.statusLine = "Copied row to clipboard."
	}

	id := m.flashID
	return m, tea.Tick(CopiedFeedback, func(time.Time) tea.Msg {
		return clearCopiedMsg{id: id}
	})
}

func (m Model) loadCatalogCmd() tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := store.Load(ctx)
		return catalogLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) copyCmd(key string, all bool, count int, text string) tea.Cmd {
	writer := m.clipboard
	return func() tea.Msg {
		if writer == nil {
			return copyResultMsg{key: key, all: all, count: count, err: errors.New("no clipboard configured")}
		}
		err := writer.WriteText(text)
		return copyResultMsg{key: key, all: all, count: count, err: err}
	}
}

func (m Model) currentRow() (catalog.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return catalog.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	height := m.tableHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	m.offset = max(0, min(m.offset, max(0, len(m.rows)-height)))
}

// Selection exposes the current selection.
func (m Model) Selection() selection.Set {
	return m.selected
}

// Rows exposes the rows currently visible after filtering.
func (m Model) Rows() []catalog.Row {
	return m.rows
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func pluralES(count int) string {
	if count == 1 {
		return ""
	}
	return "es"
}
