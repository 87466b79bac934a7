package catalog

import (
	"bytes"
	"encoding/json"
)

// extraFields holds object members the catalog types do not model. They are
// written back unchanged so rewriting collection.json keeps every API field.
type extraFields map[string]json.RawMessage

var (
	dateFields      = []string{"full_date", "month_known", "day_known", "date_variant", "time"}
	recordingFields = []string{"id", "show", "tour", "date", "master"}
	entryFields     = []string{"recording", "share_link", "source_path", "source_folder"}
)

func (d *Date) UnmarshalJSON(data []byte) error {
	type plain Date
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownFields(data, dateFields)
	if err != nil {
		return err
	}
	*d = Date(p)
	d.extra = extra
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	type plain Date
	return marshalWithExtra(plain(d), d.extra)
}

func (r *Recording) UnmarshalJSON(data []byte) error {
	type plain Recording
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownFields(data, recordingFields)
	if err != nil {
		return err
	}
	*r = Recording(p)
	r.extra = extra
	return nil
}

func (r Recording) MarshalJSON() ([]byte, error) {
	type plain Recording
	return marshalWithExtra(plain(r), r.extra)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownFields(data, entryFields)
	if err != nil {
		return err
	}
	*e = Entry(p)
	e.extra = extra
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return marshalWithExtra(plain(e), e.extra)
}

// unknownFields returns the members of the object in data whose names are
// not in known, or nil when there are none. Non-object input yields nil.
func unknownFields(data []byte, known []string) (extraFields, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, name := range known {
		delete(all, name)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return extraFields(all), nil
}

func marshalWithExtra(v any, extra extraFields) ([]byte, error) {
	data, err := marshalNoEscape(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for name, value := range extra {
		if _, ok := merged[name]; !ok {
			merged[name] = value
		}
	}
	return marshalNoEscape(merged)
}

// marshalNoEscape keeps '&' in share links readable.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
