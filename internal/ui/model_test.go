package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/curtaincall/internal/catalog"
	"github.com/faizmokh/curtaincall/internal/clip"
	"github.com/faizmokh/curtaincall/internal/files"
)

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			ShareLink:    "https://drive.google.com/drive/folders/ne",
			SourcePath:   "Unsorted/Mystery {ne}",
			SourceFolder: "Mystery {ne}",
		},
		{
			Recording: &catalog.Recording{
				ID:     5,
				Show:   "Hadestown",
				Tour:   "Broadway",
				Date:   &catalog.Date{FullDate: "2019-04-17", MonthKnown: true, DayKnown: true},
				Master: "lyricmaster",
			},
			ShareLink: "https://drive.google.com/drive/folders/h5",
		},
		{
			Recording: &catalog.Recording{ID: 2, Show: "Cats", Tour: "West End", Date: &catalog.Date{FullDate: "1998"}, Master: "anon"},
			ShareLink: "https://drive.google.com/drive/folders/c2",
		},
	}
}

func newTestModel(t *testing.T, entries []catalog.Entry) (Model, *clip.Memory) {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	store := catalog.NewStore(mgr)
	if entries != nil {
		if err := store.Save(context.Background(), entries); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	mem := &clip.Memory{}
	m := NewModel(context.Background(), store, mem)
	m = update(t, m, m.Init()())
	return m, mem
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(Model), cmd
}

func TestModelLoadsSortedRows(t *testing.T) {
	m, _ := newTestModel(t, testEntries())

	rows := m.Rows()
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].Key != "2" || rows[1].Key != "5" || rows[2].Matched {
		t.Fatalf("row order = %q, %q, %q", rows[0].Key, rows[1].Key, rows[2].Key)
	}

	view := m.View()
	for _, want := range []string{"Hadestown", "Cats", "Unsorted/Mystery {ne}", "April 17, 2019", "Loaded 3 recordings."} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelMissingCatalogShowsError(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if len(m.Rows()) != 0 {
		t.Fatalf("rows = %v, want none", m.Rows())
	}
	if !strings.Contains(m.View(), "No collection found") {
		t.Fatalf("view missing error:\n%s", m.View())
	}
}

func TestModelToggleRow(t *testing.T) {
	m, _ := newTestModel(t, testEntries())

	m, _ = press(t, m, "x")
	if !m.Selection().Has("2") {
		t.Fatalf("selection keys = %v, want [2]", m.Selection().Keys())
	}
	if !strings.Contains(m.View(), "[2] Cats - West End - 1998 - anon") {
		t.Fatalf("view missing summary:\n%s", m.View())
	}

	m, _ = press(t, m, "x")
	if m.Selection().Len() != 0 {
		t.Fatalf("selection keys = %v, want empty", m.Selection().Keys())
	}
}

func TestModelToggleAllTwiceClearsSelection(t *testing.T) {
	m, _ := newTestModel(t, testEntries())

	m, _ = press(t, m, "a")
	if m.Selection().Len() != 3 {
		t.Fatalf("after select all Len = %d, want 3", m.Selection().Len())
	}
	m, _ = press(t, m, "a")
	if m.Selection().Len() != 0 {
		t.Fatalf("after deselect all Len = %d, want 0", m.Selection().Len())
	}
}

func TestModelSearchFiltersRows(t *testing.T) {
	m, _ := newTestModel(t, testEntries())

	m, _ = press(t, m, "/")
	for _, r := range "MYSTERY" {
		m, _ = press(t, m, string(r))
	}
	if len(m.Rows()) != 1 || m.Rows()[0].Matched {
		t.Fatalf("filtered rows = %+v, want the unmatched folder", m.Rows())
	}

	// Toggle all only touches visible rows.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, "a")
	if m.Selection().Len() != 1 || !m.Selection().Has("Unsorted/Mystery {ne}") {
		t.Fatalf("selection keys = %v", m.Selection().Keys())
	}

	m, _ = press(t, m, "/")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.Rows()) != 3 {
		t.Fatalf("rows after clearing search = %d, want 3", len(m.Rows()))
	}
	if m.Selection().Len() != 1 {
		t.Fatalf("clearing the search changed the selection: %v", m.Selection().Keys())
	}
}

func TestModelCopyRowShowsTransientFeedback(t *testing.T) {
	m, mem := newTestModel(t, testEntries())

	m, _ = press(t, m, "j")
	m, cmd := press(t, m, "c")
	if cmd == nil {
		t.Fatalf("copy returned no command")
	}
	m, tick := func() (Model, tea.Cmd) {
		next, tick := m.Update(cmd())
		return next.(Model), tick
	}()
	if tick == nil {
		t.Fatalf("copy result did not schedule feedback reset")
	}

	want := "Hadestown - Broadway\nApril 17, 2019 - lyricmaster\nhttps://drive.google.com/drive/folders/h5\nhttps://encora.it/recordings/5"
	if mem.Last() != want {
		t.Fatalf("clipboard = %q, want %q", mem.Last(), want)
	}
	if !strings.Contains(m.View(), "✓ copied") {
		t.Fatalf("view missing copied marker:\n%s", m.View())
	}

	m = update(t, m, clearCopiedMsg{id: m.flashID})
	if strings.Contains(m.View(), "✓ copied") {
		t.Fatalf("copied marker not cleared:\n%s", m.View())
	}
}

func TestModelCopySelected(t *testing.T) {
	m, mem := newTestModel(t, testEntries())

	m, cmd := press(t, m, "C")
	if cmd != nil || !strings.Contains(m.View(), "Nothing selected.") {
		t.Fatalf("copy with empty selection should only report status")
	}

	m, _ = press(t, m, "x")
	m, _ = press(t, m, "G")
	m, _ = press(t, m, "x")
	m, cmd = press(t, m, "C")
	if cmd == nil {
		t.Fatalf("copy selected returned no command")
	}
	m = update(t, m, cmd())

	want := m.Selection().CopyText()
	if mem.Last() != want || !strings.Contains(want, "\n\nMystery {ne}\n") {
		t.Fatalf("clipboard = %q, want %q", mem.Last(), want)
	}
	if !strings.Contains(m.View(), "Copied!") {
		t.Fatalf("view missing Copied! label:\n%s", m.View())
	}

	stale := clearCopiedMsg{id: m.flashID - 1}
	m = update(t, m, stale)
	if !m.copiedAll {
		t.Fatalf("stale reset cleared the current feedback")
	}
}

func TestModelCopyFailureIsReported(t *testing.T) {
	m, mem := newTestModel(t, testEntries())
	mem.Err = errors.New("clipboard unavailable")

	m, cmd := press(t, m, "c")
	m = update(t, m, cmd())

	if !strings.Contains(m.View(), "Copy failed: clipboard unavailable") {
		t.Fatalf("view missing copy error:\n%s", m.View())
	}
}

func TestModelFrameFitsWindowAfterSelectAll(t *testing.T) {
	entries := make([]catalog.Entry, 200)
	for i := range entries {
		entries[i] = catalog.Entry{Recording: &catalog.Recording{
			ID:     i + 1,
			Show:   fmt.Sprintf("Show %03d", i+1),
			Tour:   "Tour",
			Date:   &catalog.Date{FullDate: "2020"},
			Master: "master",
		}}
	}
	m, _ := newTestModel(t, entries)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assertFits := func(step string) {
		t.Helper()
		view := m.View()
		if lines := strings.Count(view, "\n"); lines > 40 {
			t.Fatalf("%s: view has %d lines, window has 40", step, lines)
		}
		for _, want := range []string{"Curtain Call", "Master", "Show"} {
			if !strings.Contains(view, want) {
				t.Fatalf("%s: view missing %q:\n%s", step, want, view)
			}
		}
	}

	assertFits("initial")

	m, _ = press(t, m, "a")
	if m.Selection().Len() != 200 {
		t.Fatalf("selection Len = %d, want 200", m.Selection().Len())
	}
	assertFits("select all")
	if !strings.Contains(m.View(), "… and 195 more") {
		t.Fatalf("summary not collapsed:\n%s", m.View())
	}

	m, _ = press(t, m, "G")
	assertFits("bottom")
	if !strings.Contains(m.View(), "Show 200") {
		t.Fatalf("cursor row not visible at bottom:\n%s", m.View())
	}
}
