package bunsetsu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_ShouldSeedTwoSentinelsAndFourCharacters(t *testing.T) {
	assert := assert.New(t)

	var w window
	consumed, err := initWindow("あいうえお", &w)
	assert.NoError(err)
	assert.Equal(12, consumed)

	assert.True(w[0].Sentinel())
	assert.True(w[1].Sentinel())
	assert.Equal('あ', w[2].Character())
	assert.Equal('い', w[3].Character())
	assert.Equal('う', w[4].Character())
	assert.Equal('え', w[5].Character())
}

func TestWindow_ShouldPadShortInputWithSentinels(t *testing.T) {
	assert := assert.New(t)

	var w window
	consumed, err := initWindow("あ", &w)
	assert.NoError(err)
	assert.Equal(3, consumed)
	assert.Equal('あ', w[2].Character())
	for _, i := range []int{0, 1, 3, 4, 5} {
		assert.True(w[i].Sentinel(), "slot %d should be a sentinel", i)
	}

	consumed, err = initWindow("", &w)
	assert.NoError(err)
	assert.Zero(consumed)
	for i := range w {
		assert.True(w[i].Sentinel(), "slot %d should be a sentinel", i)
	}
}

func TestWindow_ShouldRejectMalformedInput(t *testing.T) {
	var w window
	_, err := initWindow("\xff\xfe", &w)
	assert.True(t, errors.Is(err, ErrMalformedText))
}

func TestWindow_SlideShouldShiftAndAppend(t *testing.T) {
	assert := assert.New(t)

	var w window
	_, err := initWindow("あいうえ", &w)
	assert.NoError(err)

	var next Element
	next.setRune('お')
	w.slide(next)

	assert.True(w[0].Sentinel())
	assert.Equal('あ', w[1].Character())
	assert.Equal('い', w[2].Character())
	assert.Equal('う', w[3].Character())
	assert.Equal('え', w[4].Character())
	assert.Equal('お', w[5].Character())

	w.slide(sentinel())
	assert.Equal('あ', w[0].Character())
	assert.True(w[5].Sentinel())
}
