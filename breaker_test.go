package bunsetsu

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Two sentences from the embedded model's training domain. The expected
// boundaries were produced by the reference evaluation of the model.
const (
	sentence       = "今日はいい天気です。明日も晴れ。"
	shortSentence  = "今日はいい天気です"
	novelSentence  = "吾輩は猫である"
	abxModel       = `{"scheme": "unigram/1", "bias": -1, "weights": {"pos(-1)=A": 1, "pos(0)=B": 1}}`
	punctModel     = `{"scheme": "unigram/1", "bias": -1, "weights": {"pos(-1)=あ": 5, "pos(0)=。": 5}}`
	edgeBlockModel = `{"scheme": "ngram/2", "bias": -1, "weights": {"UB1:999": 5}}`
	edgeCharModel  = `{"scheme": "unigram/1", "bias": -1, "weights": {"pos(-3)=A": 9}}`
)

var testEngine *Engine

func init() {
	var err error
	testEngine, err = New(Config{})
	if err != nil {
		panic(err)
	}
}

func TestEngine_DefaultModelShouldBeEmbedded(t *testing.T) {
	assert := assert.New(t)

	m := testEngine.Model()
	assert.Equal("ja-phrase", m.Name())
	assert.Equal(SchemeNgram, m.Scheme().Name())
}

func TestEngine_FixtureShouldAcceptSingleBoundary(t *testing.T) {
	assert := assert.New(t)

	e, err := New(Config{Model: []byte(abxModel)})
	assert.NoError(err)

	breaks, err := e.DivideUpRange("ABX", 0, 3, "ABX", nil, nil)
	assert.NoError(err)
	assert.Equal([]int{1}, breaks)
}

func TestEngine_ShouldDivideSentence(t *testing.T) {
	assert := assert.New(t)

	breaks, err := testEngine.DivideUpRange(sentence, 0, len(sentence), sentence, nil, nil)
	assert.NoError(err)
	assert.Equal([]int{9, 15, 30, 39}, breaks)

	breaks, err = testEngine.DivideUpRange(shortSentence, 0, len(shortSentence), shortSentence, nil, nil)
	assert.NoError(err)
	assert.Equal([]int{9, 15}, breaks)

	breaks, err = testEngine.DivideUpRange(novelSentence, 0, len(novelSentence), novelSentence, nil, nil)
	assert.NoError(err)
	assert.Equal([]int{9}, breaks)
}

func TestEngine_ShouldBeDeterministic(t *testing.T) {
	assert := assert.New(t)

	first, err := testEngine.DivideUpRange(sentence, 0, len(sentence), sentence, nil, nil)
	assert.NoError(err)

	for i := 0; i < 10; i++ {
		next, err := testEngine.DivideUpRange(sentence, 0, len(sentence), sentence, nil, nil)
		assert.NoError(err)
		assert.Equal(first, next)
	}
}

func TestEngine_ShouldBeSafeForConcurrentUse(t *testing.T) {
	want, err := testEngine.DivideUpRange(sentence, 0, len(sentence), sentence, nil, nil)
	assert.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := testEngine.DivideUpRange(sentence, 0, len(sentence), sentence, nil, nil)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestEngine_ShouldAppendToFoundBreaks(t *testing.T) {
	assert := assert.New(t)

	e, err := New(Config{Model: []byte(abxModel)})
	assert.NoError(err)

	breaks := []int{99}
	breaks, err = e.DivideUpRange("ABX", 0, 3, "ABX", nil, breaks)
	assert.NoError(err)
	assert.Equal([]int{99, 1}, breaks)
}

func TestEngine_DegenerateRangesShouldYieldNoBreaks(t *testing.T) {
	assert := assert.New(t)

	breaks, err := testEngine.DivideUpRange("", 0, 0, "", nil, nil)
	assert.NoError(err)
	assert.Empty(breaks)

	breaks, err = testEngine.DivideUpRange("あ", 0, len("あ"), "あ", nil, nil)
	assert.NoError(err)
	assert.Empty(breaks)

	// An empty range in the middle of a longer text.
	breaks, err = testEngine.DivideUpRange("こんにちは", 6, 6, "", nil, nil)
	assert.NoError(err)
	assert.Empty(breaks)
}

func TestEngine_ShouldTranslateRelativeOffsets(t *testing.T) {
	assert := assert.New(t)

	e, err := New(Config{Model: []byte(abxModel)})
	assert.NoError(err)

	// The range starts at 10, so the boundary accepted at normalized
	// offset 1 lands on native offset 11.
	text := strings.Repeat("z", 10) + "ABX"
	breaks, err := e.DivideUpRange(text, 10, 13, "ABX", nil, nil)
	assert.NoError(err)
	assert.Equal([]int{11}, breaks)
}

func TestEngine_ShouldTranslateThroughIndexMap(t *testing.T) {
	assert := assert.New(t)

	e, err := New(Config{Model: []byte(abxModel)})
	assert.NoError(err)

	text := strings.Repeat("z", 18)
	breaks, err := e.DivideUpRange(text, 10, 18, "ABX", []int{10, 14, 15, 18}, nil)
	assert.NoError(err)
	assert.Equal([]int{14}, breaks)

	// A map entry collapsing onto the range start is not an interior
	// boundary and must be dropped.
	breaks, err = e.DivideUpRange(text, 10, 18, "ABX", []int{10, 10, 15, 18}, nil)
	assert.NoError(err)
	assert.Empty(breaks)
}

func TestEngine_ShouldRejectBrokenIndexMaps(t *testing.T) {
	text := strings.Repeat("z", 18)

	testCases := []struct {
		desc     string
		inputMap []int
	}{
		{"wrong length", []int{10, 18}},
		{"decreasing entries", []int{10, 14, 12, 18}},
		{"entry past range end", []int{10, 14, 15, 19}},
		{"entry before range start", []int{9, 14, 15, 18}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := testEngine.DivideUpRange(text, 10, 18, "ABX", tc.inputMap, nil)
			assert.ErrorIs(t, err, ErrIndexMap)
		})
	}
}

func TestEngine_ShouldRejectInvalidRanges(t *testing.T) {
	testCases := []struct {
		desc       string
		start, end int
	}{
		{"negative start", -1, 3},
		{"end past text", 0, 64},
		{"start after end", 3, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := testEngine.DivideUpRange("ABX", tc.start, tc.end, "ABX", nil, nil)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestEngine_ShouldRejectMalformedText(t *testing.T) {
	assert := assert.New(t)

	// Broken lead byte inside the seed window.
	text := "あ\xff"
	_, err := testEngine.DivideUpRange(text, 0, len(text), text, nil, nil)
	assert.ErrorIs(err, ErrMalformedText)

	// Broken byte past the seed window, hit while sliding. Previously
	// appended breaks must not leak into the caller's slice.
	text = "あいうえ\xff"
	breaks, err := testEngine.DivideUpRange(text, 0, len(text), text, nil, []int{7})
	assert.ErrorIs(err, ErrMalformedText)
	assert.Equal([]int{7}, breaks)
}

func TestEngine_ShouldNotStartPhraseWithClosePunct(t *testing.T) {
	assert := assert.New(t)

	e, err := New(Config{Model: []byte(punctModel)})
	assert.NoError(err)

	// The weights push hard for a boundary before the full stop, yet only
	// the boundary between the two あ is accepted.
	text := "ああ。"
	breaks, err := e.DivideUpRange(text, 0, len(text), text, nil, nil)
	assert.NoError(err)
	assert.Equal([]int{3}, breaks)
}

func TestEngine_SentinelSlotsShouldSkipCharacterFeatures(t *testing.T) {
	assert := assert.New(t)

	e, err := New(Config{Model: []byte(edgeCharModel)})
	assert.NoError(err)

	// pos(-3) never holds a character for a two rune text, so its weight
	// can never fire.
	breaks, err := e.DivideUpRange("AB", 0, 2, "AB", nil, nil)
	assert.NoError(err)
	assert.Empty(breaks)
}

func TestEngine_SentinelSlotsShouldKeepBlockFeatures(t *testing.T) {
	assert := assert.New(t)

	e, err := New(Config{Model: []byte(edgeBlockModel)})
	assert.NoError(err)

	// Block features render for sentinel slots with the out of range
	// code, so a model may weigh proximity to the text edges.
	text := "あい"
	breaks, err := e.DivideUpRange(text, 0, len(text), text, nil, nil)
	assert.NoError(err)
	assert.Equal([]int{3}, breaks)
}

func TestEngine_ShouldRequireLoadedModel(t *testing.T) {
	assert := assert.New(t)

	var nilEngine *Engine
	_, err := nilEngine.DivideUpRange("AB", 0, 2, "AB", nil, nil)
	assert.ErrorIs(err, ErrNotReady)

	_, err = new(Engine).DivideUpRange("AB", 0, 2, "AB", nil, nil)
	assert.ErrorIs(err, ErrNotReady)
}

func TestEngine_NewShouldSurfaceModelErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := New(Config{Model: []byte("{")})
	assert.ErrorIs(err, ErrCorruptModel)

	_, err = New(Config{Model: []byte("")})
	assert.ErrorIs(err, ErrNoModel)

	_, err = New(Config{ModelFS: modelFS})
	assert.ErrorIs(err, ErrNoModel, "a file system without a name cannot locate a model")
}

func TestEngine_ShouldReportHandledCharacters(t *testing.T) {
	testCases := []struct {
		r    rune
		want bool
	}{
		{'あ', true},
		{'ア', true},
		{'ｱ', true},
		{'漢', true},
		{'ー', true},
		{'A', true},
		{'ｚ', true},
		{'7', true},
		{'（', true},
		{'「', true},
		{'。', false},
		{'、', false},
		{'」', false},
		{' ', false},
		{'・', false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, testEngine.Handles(tc.r), "rune %q", tc.r)
	}
}
