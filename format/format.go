// Package format implements the output encodings for segmented text.
// Each input line becomes one output record: the phrases joined by a
// separator in text mode, a JSON array of phrase objects in json mode, or
// one tab separated row per phrase in tsv mode.
package format

import (
	"fmt"

	"github.com/esimov/bunsetsu/utils"
)

const (
	Text = "text"
	JSON = "json"
	TSV  = "tsv"
)

// Mode holds the currently active output mode.
type Mode struct {
	opType string
}

// NewMode initializes a new output mode holder.
func NewMode() *Mode {
	return &Mode{}
}

// Set activates one of the supported output modes.
func (m *Mode) Set(opType string) error {
	if !utils.Contains(Supported(), opType) {
		return fmt.Errorf("unsupported output format: %q", opType)
	}
	m.opType = opType
	return nil
}

// Get returns the currently active output mode.
func (m *Mode) Get() string {
	return m.opType
}

// Supported returns the output modes an encoder accepts.
func Supported() []string {
	return []string{Text, JSON, TSV}
}
