package bunsetsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_ShouldPadShortBlockCodes(t *testing.T) {
	assert := assert.New(t)

	var el Element
	el.Set('A', "1")
	assert.Equal('A', el.Character())
	assert.Equal("001", string(el.Block()))
	assert.Equal(3, el.BlockLen())

	el.Set('あ', "62")
	assert.Equal("062", string(el.Block()))
}

func TestElement_ShouldKeepLastDigitsOfLongCodes(t *testing.T) {
	var el Element
	el.Set('x', "12345")
	assert.Equal(t, "345", string(el.Block()))
}

func TestElement_ShouldMarkSentinelSlots(t *testing.T) {
	assert := assert.New(t)

	el := sentinel()
	assert.True(el.Sentinel())
	assert.Equal(rune(-1), el.Character())
	assert.Equal("999", string(el.Block()))

	var real Element
	real.setRune('あ')
	assert.False(real.Sentinel())
}

func TestElement_SetRuneShouldMatchBlockCode(t *testing.T) {
	for _, r := range []rune{'A', 'é', 'あ', 'ア', '漢', '。', 'ｱ', '😀'} {
		var el Element
		el.setRune(r)
		assert.Equal(t, BlockCode(r), string(el.Block()))
		assert.Equal(t, r, el.Character())
	}
}
