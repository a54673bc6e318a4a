package bunsetsu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/bunsetsu/format"
	"github.com/esimov/bunsetsu/utils"
)

// maxLineSize bounds the line scanner buffer. Japanese prose is often a
// single unbroken line per paragraph, so the default scanner limit is too
// small.
const maxLineSize = 1 << 20

// decodeText opens a source document and verifies that it holds text
// content before any of it is segmented.
func decodeText(path string) (*os.File, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the source file: %w", err)
	}
	if !strings.Contains(ctype, "text") {
		return nil, fmt.Errorf("the provided file %q is not a valid text document", filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// scanLines returns a line scanner sized for long unbroken text.
func scanLines(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// newEncoder builds the output encoder matching the processor options.
func (p *Processor) newEncoder(w io.Writer) (*format.Encoder, error) {
	mode := format.NewMode()
	name := p.Format
	if name == "" {
		name = format.Text
	}
	if err := mode.Set(name); err != nil {
		return nil, err
	}
	enc := format.NewEncoder(w, mode, p.Separator)
	enc.Pretty = p.Pretty
	return enc, nil
}
