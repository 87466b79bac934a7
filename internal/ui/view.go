package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/faizmokh/curtaincall/internal/catalog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	unmatchedStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6C757D"))

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

const (
	defaultWidth       = 120
	defaultTableHeight = 20
	minTableHeight     = 3
	// Summary lines shown before collapsing the rest into a count.
	maxSummaryLines = 5

	cursorWidth = 2
	checkWidth  = 3
	dateWidth   = 24
	idWidth     = 8
	copyWidth   = 8
	columnGap   = "  "
)

type columns struct {
	show, tour, master int
}

func (m Model) columns() columns {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	fixed := cursorWidth + checkWidth + dateWidth + idWidth + copyWidth + 6*len(columnGap)
	flex := max(width-fixed, 24)
	show := flex * 2 / 5
	tour := flex * 3 / 10
	return columns{show: show, tour: tour, master: flex - show - tour}
}

// tableHeight is the number of rows that fit once the rest of the frame is
// rendered. The table header and the paging line are always reserved.
func (m Model) tableHeight() int {
	if m.height <= 0 {
		return defaultTableHeight
	}
	used := lineCount(m.renderTop()) + lineCount(m.renderDetail()) + lineCount(m.renderFooter()) + 2
	return max(m.height-used, minTableHeight)
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTop())

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0 && m.errorLine != "":
		b.WriteString("(no collection loaded)\n")
	case len(m.rows) == 0:
		b.WriteString(m.renderHeader())
		b.WriteString(dimStyle.Render("  (no matching recordings)"))
		b.WriteByte('\n')
	default:
		b.WriteString(m.renderHeader())
		height := m.tableHeight()
		offset := m.offset
		if m.cursor >= offset+height {
			offset = m.cursor - height + 1
		}
		end := min(offset+height, len(m.rows))
		for i := offset; i < end; i++ {
			b.WriteString(m.renderRow(i, m.rows[i]))
			b.WriteByte('\n')
		}
		if len(m.rows) > height {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  rows %d-%d of %d", offset+1, end, len(m.rows))))
			b.WriteByte('\n')
		}
		b.WriteString(m.renderDetail())
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTop() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Curtain Call"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d of %d recording%s · %d selected",
		len(m.rows), len(m.entries), pluralS(len(m.entries)), m.selected.Len())))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) renderFooter() string {
	var b strings.Builder
	b.WriteString(m.renderSelection())

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.help.View(searchKeyMap{apply: m.keys.Apply, cancel: m.keys.CancelEdit}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderHeader() string {
	cols := m.columns()
	check := "[ ]"
	if m.selected.AllSelected(m.rows) {
		check = "[x]"
	}
	line := strings.Repeat(" ", cursorWidth) + strings.Join([]string{
		pad(check, checkWidth),
		pad("Show", cols.show),
		pad("Tour", cols.tour),
		pad("Date", dateWidth),
		pad("Master", cols.master),
		pad("Encora", idWidth),
		pad("Copy", copyWidth),
	}, columnGap)
	return headerStyle.Render(line) + "\n"
}

func (m Model) renderRow(index int, row catalog.Row) string {
	cols := m.columns()

	cursor := strings.Repeat(" ", cursorWidth)
	if index == m.cursor {
		cursor = cursorStyle.Render(pad(">", cursorWidth))
	}

	check := "[ ]"
	if m.selected.Has(row.Key) {
		check = "[x]"
	}

	copyLabel := "copy"
	if row.Key == m.copiedKey {
		copyLabel = copiedStyle.Render(pad("✓ copied", copyWidth))
	}

	var cells []string
	if !row.Matched {
		span := cols.show + cols.tour + dateWidth + cols.master + 3*len(columnGap)
		cells = []string{
			pad(check, checkWidth),
			unmatchedStyle.Render(pad(row.Source, span)),
			pad("", idWidth),
			pad(copyLabel, copyWidth),
		}
	} else {
		cells = []string{
			pad(check, checkWidth),
			pad(row.Show, cols.show),
			pad(row.Tour, cols.tour),
			pad(row.Date, dateWidth),
			pad(row.Master, cols.master),
			pad(row.IDText(), idWidth),
			pad(copyLabel, copyWidth),
		}
	}
	return cursor + strings.Join(cells, columnGap)
}

func (m Model) renderDetail() string {
	row, ok := m.currentRow()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteByte('\n')
	if row.Matched {
		b.WriteString(dimStyle.Render("Link:   ") + row.Link + "\n")
		b.WriteString(dimStyle.Render("Encora: ") + row.RecordingURL() + "\n")
	} else {
		b.WriteString(dimStyle.Render("Folder: ") + row.Folder + "\n")
		b.WriteString(dimStyle.Render("Link:   ") + row.Link + "\n")
	}
	return b.String()
}

func (m Model) renderSelection() string {
	label := "[C] Copy Selected"
	if m.copiedAll {
		label = copiedStyle.Render("Copied!")
	}

	summary := m.selected.Summary()
	if summary == "" {
		return "\n" + dimStyle.Render(label+" (nothing selected)") + "\n"
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	lines := strings.Split(summary, "\n")
	if hidden := len(lines) - maxSummaryLines; hidden > 0 {
		lines = append(lines[:maxSummaryLines], fmt.Sprintf("… and %d more", hidden))
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, max(width-6, 10), "…")
	}
	body := label + "\n" + strings.Join(lines, "\n")
	return "\n" + summaryStyle.Render(body) + "\n"
}

func lineCount(s string) int {
	return strings.Count(s, "\n")
}

// pad truncates or right-pads text to exactly width terminal cells.
func pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "…")
	if gap := width - ansi.StringWidth(text); gap > 0 {
		text += strings.Repeat(" ", gap)
	}
	return text
}
