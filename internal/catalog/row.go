package catalog

import (
	"strconv"
	"strings"
)

// RecordingURLPrefix is the public Encora page for a recording id.
const RecordingURLPrefix = "https://encora.it/recordings/"

// Row is the display view model for one catalog entry.
type Row struct {
	Key     string `json:"key"`
	ID      int    `json:"id,omitempty"`
	Matched bool   `json:"matched"`
	Show    string `json:"show,omitempty"`
	Tour    string `json:"tour,omitempty"`
	Date    string `json:"date,omitempty"`
	Master  string `json:"master,omitempty"`
	Link    string `json:"link,omitempty"`
	Source  string `json:"source_path,omitempty"`
	Folder  string `json:"source_folder,omitempty"`
}

// NewRow derives the view model for an entry.
func NewRow(entry Entry) Row {
	rec := entry.recording()
	row := Row{
		ID:      rec.ID,
		Matched: entry.Matched(),
		Show:    rec.Show,
		Tour:    rec.Tour,
		Date:    FormatDate(rec.Date),
		Master:  rec.Master,
		Link:    entry.ShareLink,
		Source:  entry.SourcePath,
		Folder:  entry.SourceFolder,
	}
	row.Key = KeyFor(entry)
	return row
}

// KeyFor returns the selection key of an entry: its recording id when
// present, otherwise its source path.
func KeyFor(entry Entry) string {
	if id := entry.ID(); id != 0 {
		return strconv.Itoa(id)
	}
	return entry.SourcePath
}

// IDText renders the id, or "" when the row has none.
func (r Row) IDText() string {
	if r.ID == 0 {
		return ""
	}
	return strconv.Itoa(r.ID)
}

// RecordingURL links to the Encora page of the recording.
func (r Row) RecordingURL() string {
	return RecordingURLPrefix + r.IDText()
}

// SearchText is the space-joined haystack the filter matches against.
func (r Row) SearchText() string {
	return strings.Join([]string{
		r.IDText(), r.Show, r.Tour, r.Date, r.Master, r.Link, r.Source,
	}, " ")
}

// Matches reports whether filter occurs in the row, ignoring case.
// An empty filter matches every row.
func (r Row) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.SearchText()), strings.ToLower(filter))
}

// CopyText is the clipboard text for a single row.
func (r Row) CopyText() string {
	if !r.Matched {
		return r.Folder + "\n" + r.Link
	}
	return r.Show + " - " + r.Tour + "\n" +
		r.Date + " - " + r.Master + "\n" +
		r.Link + "\n" +
		r.RecordingURL()
}

// SummaryLine is the one-line description used by the selection summary.
// Rows without an id, matched or not, are summarised by their folder.
func (r Row) SummaryLine() string {
	if r.ID == 0 {
		folder := r.Folder
		if folder == "" {
			folder = "(unknown folder)"
		}
		return "[ne] " + folder
	}
	return "[" + r.IDText() + "] " + r.Show + " - " + r.Tour + " - " + r.Date + " - " + r.Master
}

// BuildRows sorts a copy of entries and returns the rows that match filter.
func BuildRows(entries []Entry, filter string) []Row {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	Sort(sorted)

	rows := make([]Row, 0, len(sorted))
	for _, entry := range sorted {
		row := NewRow(entry)
		if !row.Matches(filter) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// IndexRows maps each row key to its row.
func IndexRows(rows []Row) map[string]Row {
	index := make(map[string]Row, len(rows))
	for _, row := range rows {
		index[row.Key] = row
	}
	return index
}
