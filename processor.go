package bunsetsu

import (
	"fmt"
	"io"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/esimov/bunsetsu/format"
)

var _ Segmenter = (*Processor)(nil)

// Segmenter splits text into phrases.
type Segmenter interface {
	Segment(text string) ([]Phrase, error)
}

// Phrase is one segment of the input text. Start and End are native code
// unit offsets into the segmented string, so Text == input[Start:End] even
// when scoring ran over a normalized rendering.
type Phrase struct {
	Text  string
	Start int
	End   int
}

// Processor drives an engine over whole documents. The exported fields are
// options; zero values select plain text output with no separator, no
// normalization and no cache. A processor may be shared by concurrent
// workers once configured.
type Processor struct {
	// Engine scores the candidate boundaries. Required.
	Engine *Engine

	// NFKC normalizes every eligible text run before scoring and maps
	// the accepted boundaries back to native offsets.
	NFKC bool

	// Separator is inserted between phrases in text output.
	Separator string

	// Format selects the output encoding: format.Text, format.JSON or
	// format.TSV.
	Format string

	// Pretty decorates the separators of text output with ANSI colors
	// when the destination is a terminal.
	Pretty bool

	// CacheSize bounds the number of segmented lines kept for reuse.
	// Zero disables caching.
	CacheSize int

	initOnce sync.Once
	cache    *lru.Cache[string, []Phrase]
}

func (p *Processor) init() {
	p.initOnce.Do(func() {
		if p.CacheSize > 0 {
			p.cache, _ = lru.New[string, []Phrase](p.CacheSize)
		}
	})
}

// Segment splits text into phrases. Boundaries are the model accepted
// breaks inside each eligible text run plus the starts of the runs
// themselves; characters the engine does not handle attach to the phrase in
// progress.
func (p *Processor) Segment(text string) ([]Phrase, error) {
	if !p.Engine.ready() {
		return nil, ErrNotReady
	}
	p.init()
	if p.cache != nil {
		if phrases, ok := p.cache.Get(text); ok {
			// Hand out a copy so a caller mutating its result cannot
			// poison the cached line.
			return slices.Clone(phrases), nil
		}
	}
	phrases, err := p.segment(text)
	if err != nil {
		return nil, err
	}
	if p.cache != nil {
		p.cache.Add(text, phrases)
		return slices.Clone(phrases), nil
	}
	return phrases, nil
}

func (p *Processor) segment(text string) ([]Phrase, error) {
	var (
		breaks []int
		err    error
	)
	for _, run := range p.eligibleRuns(text) {
		// A new run closes the phrase the previous one left open.
		if run[0] > 0 {
			breaks = append(breaks, run[0])
		}
		normalized, indexMap := text[run[0]:run[1]], []int(nil)
		if p.NFKC {
			normalized, indexMap, err = NormalizeNFKC(text, run[0], run[1])
			if err != nil {
				return nil, err
			}
		}
		breaks, err = p.Engine.DivideUpRange(text, run[0], run[1], normalized, indexMap, breaks)
		if err != nil {
			return nil, err
		}
	}

	phrases := make([]Phrase, 0, len(breaks)+1)
	prev := 0
	for _, b := range breaks {
		if b <= prev || b >= len(text) {
			continue
		}
		phrases = append(phrases, Phrase{Text: text[prev:b], Start: prev, End: b})
		prev = b
	}
	if len(text) > 0 {
		phrases = append(phrases, Phrase{Text: text[prev:], Start: prev, End: len(text)})
	}
	return phrases, nil
}

// eligibleRuns returns the maximal [start, end) code unit ranges of
// consecutive characters the engine handles.
func (p *Processor) eligibleRuns(text string) [][2]int {
	var runs [][2]int
	start := -1
	for i, r := range text {
		if p.Engine.Handles(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(text)})
	}
	return runs
}

// Process segments r line by line and writes the encoded phrases to w in
// the configured output format.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	if !p.Engine.ready() {
		return ErrNotReady
	}
	enc, err := p.newEncoder(w)
	if err != nil {
		return err
	}
	sc := scanLines(r)
	for sc.Scan() {
		phrases, err := p.Segment(sc.Text())
		if err != nil {
			return err
		}
		if err := enc.EncodeLine(toFormatPhrases(phrases)); err != nil {
			return fmt.Errorf("unable to encode phrases: %w", err)
		}
	}
	return sc.Err()
}

func toFormatPhrases(phrases []Phrase) []format.Phrase {
	out := make([]format.Phrase, len(phrases))
	for i, p := range phrases {
		out[i] = format.Phrase{Text: p.Text, Start: p.Start, End: p.End}
	}
	return out
}
