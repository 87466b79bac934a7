package catalog

// Date is the partially-known performance date attached to a recording.
type Date struct {
	FullDate    string `json:"full_date"`
	MonthKnown  bool   `json:"month_known"`
	DayKnown    bool   `json:"day_known"`
	DateVariant string `json:"date_variant,omitempty"`
	Time        string `json:"time,omitempty"`

	extra extraFields
}

// Recording describes a catalogued performance capture.
type Recording struct {
	ID     int    `json:"id,omitempty"`
	Show   string `json:"show"`
	Tour   string `json:"tour"`
	Date   *Date  `json:"date,omitempty"`
	Master string `json:"master"`

	extra extraFields
}

// Entry is one element of collection.json. Entries without a Recording are
// unmatched Drive folders that only carry their source location. Members the
// type does not model survive a load and save round trip.
type Entry struct {
	Recording    *Recording `json:"recording"`
	ShareLink    string     `json:"share_link,omitempty"`
	SourcePath   string     `json:"source_path,omitempty"`
	SourceFolder string     `json:"source_folder,omitempty"`

	extra extraFields
}

// Matched reports whether the entry carries a Recording.
func (e Entry) Matched() bool {
	return e.Recording != nil
}

// ID returns the recording identifier, or 0 when there is none.
func (e Entry) ID() int {
	if e.Recording == nil {
		return 0
	}
	return e.Recording.ID
}

func (e Entry) recording() Recording {
	if e.Recording == nil {
		return Recording{}
	}
	return *e.Recording
}
