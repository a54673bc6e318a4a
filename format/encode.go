package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Phrase is one segment of an input line together with its native code unit
// offsets.
type Phrase struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Encoder writes segmented lines to an output in the active mode. Pretty
// applies only to text mode and wraps each separator in ANSI colors.
type Encoder struct {
	Pretty bool

	w    io.Writer
	mode *Mode
	sep  string
}

// NewEncoder returns an encoder writing to w in the given mode, joining
// text mode phrases with sep.
func NewEncoder(w io.Writer, mode *Mode, sep string) *Encoder {
	return &Encoder{w: w, mode: mode, sep: sep}
}

// EncodeLine writes one input line's phrases as a single output record.
func (e *Encoder) EncodeLine(phrases []Phrase) error {
	switch e.mode.Get() {
	case JSON:
		return json.NewEncoder(e.w).Encode(phrases)
	case TSV:
		for _, p := range phrases {
			if _, err := fmt.Fprintf(e.w, "%d\t%d\t%s\n", p.Start, p.End, p.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		sep := e.sep
		if e.Pretty {
			sep = PrettySeparator(sep)
		}
		texts := make([]string, len(phrases))
		for i, p := range phrases {
			texts[i] = p.Text
		}
		_, err := fmt.Fprintln(e.w, strings.Join(texts, sep))
		return err
	}
}
