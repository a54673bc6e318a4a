package bunsetsu

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrNotReady is returned when an engine without a usable model is
	// asked to divide a range.
	ErrNotReady = errors.New("engine not ready: no model loaded")

	// ErrInvalidRange is returned when a requested range does not lie
	// inside the native text.
	ErrInvalidRange = errors.New("invalid text range")

	// ErrMalformedText is returned when the normalized text is not valid
	// UTF-8.
	ErrMalformedText = errors.New("malformed text")

	// ErrIndexMap is returned when a supplied index map cannot translate
	// the normalized text back to native offsets.
	ErrIndexMap = errors.New("invalid index map")
)

// Config holds the engine construction options. The zero value loads the
// embedded Japanese phrase model with the default character classes.
type Config struct {
	// Model is a raw JSON model resource. When set it takes precedence
	// over ModelFS.
	Model []byte

	// ModelFS and ModelName locate a model resource on a file system.
	// When both Model and ModelFS are nil the embedded default is used.
	ModelFS   fs.FS
	ModelName string

	// DigitOpenAlpha overrides the characters an eligible text run may
	// flow over. Nil selects DefaultDigitOpenAlpha.
	DigitOpenAlpha *RuneSet

	// ClosePunct overrides the characters no phrase may start with. Nil
	// selects DefaultClosePunct.
	ClosePunct *RuneSet
}

// Engine scores candidate phrase boundaries with a pretrained linear model.
// An engine is immutable after construction and safe for concurrent use.
type Engine struct {
	model          *Model
	digitOpenAlpha *RuneSet
	closePunct     *RuneSet
}

// New builds an engine from cfg. It fails when the model resource is
// missing or cannot be decoded; a failed construction never yields a
// partially usable engine.
func New(cfg Config) (*Engine, error) {
	var (
		model *Model
		err   error
	)
	switch {
	case cfg.Model != nil:
		model, err = UnmarshalModel(cfg.Model)
	case cfg.ModelFS != nil:
		if cfg.ModelName == "" {
			return nil, fmt.Errorf("%w: no model name for the supplied file system", ErrNoModel)
		}
		model, err = LoadModel(cfg.ModelFS, cfg.ModelName)
	default:
		model, err = LoadModel(modelFS, defaultModelName)
	}
	if err != nil {
		return nil, err
	}

	e := &Engine{
		model:          model,
		digitOpenAlpha: cfg.DigitOpenAlpha,
		closePunct:     cfg.ClosePunct,
	}
	if e.digitOpenAlpha == nil {
		e.digitOpenAlpha = DefaultDigitOpenAlpha()
	}
	if e.closePunct == nil {
		e.closePunct = DefaultClosePunct()
	}
	return e, nil
}

// Model returns the engine's loaded model.
func (e *Engine) Model() *Model {
	return e.model
}

// ready reports whether the engine holds a usable model. Nil and zero value
// engines are not ready and every evaluation entry point refuses them.
func (e *Engine) ready() bool {
	return e != nil && e.model != nil
}

// Handles reports whether the engine considers r part of an eligible text
// run: kana, Han ideographs and the digit, open punctuation and alphabet
// class.
func (e *Engine) Handles(r rune) bool {
	if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
		return true
	}
	return e.digitOpenAlpha.Contains(r)
}

// DivideUpRange scores every candidate boundary of the normalized text and
// appends the accepted ones, translated to native offsets, to foundBreaks.
// It returns the extended slice; the number of breaks found is the length
// difference.
//
// text is the native input and rangeStart, rangeEnd the native code unit
// range being divided. normalized is the text the window actually scans,
// usually an NFKC rendering of text[rangeStart:rangeEnd]. inputMap
// translates each normalized offset to a native one; nil means the
// normalized offsets already are native ones relative to rangeStart. A
// non-nil map must hold len(normalized)+1 nondecreasing entries between
// rangeStart and rangeEnd.
//
// Accepted boundaries are strictly increasing and lie strictly inside the
// range. Ranges holding fewer than two characters yield no boundaries.
func (e *Engine) DivideUpRange(text string, rangeStart, rangeEnd int, normalized string, inputMap []int, foundBreaks []int) ([]int, error) {
	if !e.ready() {
		return foundBreaks, ErrNotReady
	}
	if rangeStart < 0 || rangeEnd > len(text) || rangeStart > rangeEnd {
		return foundBreaks, fmt.Errorf("%w: [%d, %d) over %d code units", ErrInvalidRange, rangeStart, rangeEnd, len(text))
	}
	if inputMap != nil {
		if len(inputMap) != len(normalized)+1 {
			return foundBreaks, fmt.Errorf("%w: %d entries for %d code units", ErrIndexMap, len(inputMap), len(normalized))
		}
		prev := rangeStart
		for i, off := range inputMap {
			if off < prev || off > rangeEnd {
				return foundBreaks, fmt.Errorf("%w: entry %d (%d) out of order or bounds", ErrIndexMap, i, off)
			}
			prev = off
		}
	}
	if utf8.RuneCountInString(normalized) < 2 {
		return foundBreaks, nil
	}

	var w window
	consumed, err := initWindow(normalized, &w)
	if err != nil {
		return foundBreaks, err
	}

	boundary := make([]int, 0, utf8.RuneCountInString(normalized))
	keys := make([]string, 0, maxFeatures)
	buf := make([]byte, 0, 64)

	// The candidate boundary sits between slots 2 and 3, so the first
	// candidate offset is the width of the first character.
	idx := w[2].width()
	for !w[3].Sentinel() {
		boundary = e.evaluateBreakpoint(&w, idx, boundary, keys, buf)
		idx += w[3].width()

		var el Element
		if consumed < len(normalized) {
			r, size := utf8.DecodeRuneInString(normalized[consumed:])
			if r == utf8.RuneError && size < 2 {
				return foundBreaks, fmt.Errorf("%w: invalid UTF-8 sequence at offset %d", ErrMalformedText, consumed)
			}
			el.setRune(r)
			consumed += size
		} else {
			el = sentinel()
		}
		w.slide(el)
	}

	// Translate accepted boundaries to native offsets, dropping anything
	// that is not strictly increasing or not strictly inside the range.
	prev := rangeStart
	for _, b := range boundary {
		native := rangeStart + b
		if inputMap != nil {
			native = inputMap[b]
		}
		if native <= prev || native >= rangeEnd {
			continue
		}
		foundBreaks = append(foundBreaks, native)
		prev = native
	}
	return foundBreaks, nil
}

// evaluateBreakpoint scores the candidate boundary at index and appends it
// to boundary when the accumulated weight plus the model bias is strictly
// positive. Candidates directly before a close punctuation character are
// rejected without scoring.
func (e *Engine) evaluateBreakpoint(w *window, index int, boundary []int, keys []string, buf []byte) []int {
	if e.closePunct.Contains(w[3].Character()) {
		return boundary
	}
	score := e.model.Bias()
	for _, key := range e.model.Scheme().appendKeys(keys, buf, w) {
		score += e.model.Lookup(key)
	}
	if score > 0 {
		boundary = append(boundary, index)
	}
	return boundary
}
