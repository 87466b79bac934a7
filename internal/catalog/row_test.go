package catalog

import (
	"strings"
	"testing"
)

func hadestown() Entry {
	return Entry{
		Recording: &Recording{
			ID:     5,
			Show:   "Hadestown",
			Tour:   "Broadway",
			Date:   &Date{FullDate: "2023-05-02", MonthKnown: true, DayKnown: true},
			Master: "lyricmaster",
		},
		ShareLink: "https://drive.google.com/drive/folders/abc",
	}
}

func neFolder() Entry {
	return Entry{
		ShareLink:    "https://drive.google.com/drive/folders/xyz",
		SourcePath:   "Bootlegs/Unsorted/Mystery Show 2021 {ne}",
		SourceFolder: "Mystery Show 2021 {ne}",
	}
}

func TestNewRowMatched(t *testing.T) {
	row := NewRow(hadestown())

	if row.Key != "5" {
		t.Fatalf("Key = %q, want %q", row.Key, "5")
	}
	if !row.Matched {
		t.Fatalf("Matched = false, want true")
	}
	if row.Date != "May 2, 2023" {
		t.Fatalf("Date = %q, want %q", row.Date, "May 2, 2023")
	}
	if row.RecordingURL() != "https://encora.it/recordings/5" {
		t.Fatalf("RecordingURL() = %q", row.RecordingURL())
	}
}

func TestNewRowUnmatchedKeysBySourcePath(t *testing.T) {
	row := NewRow(neFolder())

	if row.Matched {
		t.Fatalf("Matched = true, want false")
	}
	if row.Key != "Bootlegs/Unsorted/Mystery Show 2021 {ne}" {
		t.Fatalf("Key = %q", row.Key)
	}
	if row.IDText() != "" {
		t.Fatalf("IDText() = %q, want empty", row.IDText())
	}
}

func TestRowCopyText(t *testing.T) {
	got := NewRow(hadestown()).CopyText()
	want := "Hadestown - Broadway\nMay 2, 2023 - lyricmaster\nhttps://drive.google.com/drive/folders/abc\nhttps://encora.it/recordings/5"
	if got != want {
		t.Fatalf("CopyText() = %q, want %q", got, want)
	}

	got = NewRow(neFolder()).CopyText()
	want = "Mystery Show 2021 {ne}\nhttps://drive.google.com/drive/folders/xyz"
	if got != want {
		t.Fatalf("unmatched CopyText() = %q, want %q", got, want)
	}
}

func TestRowSummaryLine(t *testing.T) {
	if got, want := NewRow(hadestown()).SummaryLine(), "[5] Hadestown - Broadway - May 2, 2023 - lyricmaster"; got != want {
		t.Fatalf("SummaryLine() = %q, want %q", got, want)
	}
	if got, want := NewRow(neFolder()).SummaryLine(), "[ne] Mystery Show 2021 {ne}"; got != want {
		t.Fatalf("unmatched SummaryLine() = %q, want %q", got, want)
	}

	noFolder := neFolder()
	noFolder.SourceFolder = ""
	if got, want := NewRow(noFolder).SummaryLine(), "[ne] (unknown folder)"; got != want {
		t.Fatalf("SummaryLine() without folder = %q, want %q", got, want)
	}

	noID := Entry{Recording: &Recording{Show: "Cats", Tour: "UK"}}
	if got, want := NewRow(noID).SummaryLine(), "[ne] (unknown folder)"; got != want {
		t.Fatalf("SummaryLine() for recording without id = %q, want %q", got, want)
	}
}

func TestRowMatches(t *testing.T) {
	matchedRow := NewRow(hadestown())
	unmatchedRow := NewRow(neFolder())

	tests := []struct {
		name   string
		row    Row
		filter string
		want   bool
	}{
		{name: "empty filter", row: matchedRow, filter: "", want: true},
		{name: "show lower", row: matchedRow, filter: "hades", want: true},
		{name: "tour upper", row: matchedRow, filter: "BROADWAY", want: true},
		{name: "formatted date", row: matchedRow, filter: "may 2, 2023", want: true},
		{name: "raw date is not displayed", row: matchedRow, filter: "2023-05-02", want: false},
		{name: "master", row: matchedRow, filter: "LyricMaster", want: true},
		{name: "link", row: matchedRow, filter: "folders/abc", want: true},
		{name: "id", row: matchedRow, filter: "5 hadestown", want: true},
		{name: "across fields", row: matchedRow, filter: "hadestown broadway", want: true},
		{name: "miss", row: matchedRow, filter: "cats", want: false},
		{name: "source path", row: unmatchedRow, filter: "unsorted/mystery", want: true},
		{name: "unmatched miss", row: unmatchedRow, filter: "hadestown", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Matches(tt.filter); got != tt.want {
				t.Fatalf("Matches(%q) = %v, want %v (haystack %q)", tt.filter, got, tt.want, tt.row.SearchText())
			}
		})
	}
}

func TestBuildRowsSortsAndFilters(t *testing.T) {
	entries := []Entry{neFolder(), matched(2, "Cats", "", "", "", ""), hadestown()}

	rows := BuildRows(entries, "")
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	keys := []string{rows[0].Key, rows[1].Key, rows[2].Key}
	if strings.Join(keys, ",") != "2,5,Bootlegs/Unsorted/Mystery Show 2021 {ne}" {
		t.Fatalf("row keys = %v", keys)
	}
	if entries[0].Matched() {
		t.Fatalf("BuildRows reordered its input")
	}

	rows = BuildRows(entries, "MYSTERY")
	if len(rows) != 1 || rows[0].Matched {
		t.Fatalf("filtered rows = %+v, want only the unmatched folder", rows)
	}
}
