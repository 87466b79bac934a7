// Package clip writes plain text to the system clipboard.
package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory records writes instead of touching the system clipboard.
type Memory struct {
	Writes []string
	Err    error
}

// WriteText implements Writer.
func (m *Memory) WriteText(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Writes = append(m.Writes, text)
	return nil
}

// Last returns the most recent write, or "".
func (m *Memory) Last() string {
	if len(m.Writes) == 0 {
		return ""
	}
	return m.Writes[len(m.Writes)-1]
}
