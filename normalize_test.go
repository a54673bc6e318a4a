package bunsetsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_NormalTextShouldPassThrough(t *testing.T) {
	assert := assert.New(t)

	text := "今日はいい天気です"
	normalized, indexMap, err := NormalizeNFKC(text, 0, len(text))
	assert.NoError(err)
	assert.Equal(text, normalized)
	assert.Nil(indexMap, "identity mappings carry no index map")
}

func TestNormalize_ShouldWidenHalfwidthKatakana(t *testing.T) {
	assert := assert.New(t)

	text := "ﾃｽﾄ"
	normalized, indexMap, err := NormalizeNFKC(text, 0, len(text))
	assert.NoError(err)
	assert.Equal("テスト", normalized)
	assert.Equal([]int{0, 0, 0, 3, 3, 3, 6, 6, 6, 9}, indexMap)
}

func TestNormalize_IndexMapShouldCarryRangeOffset(t *testing.T) {
	assert := assert.New(t)

	text := "ABﾃｽﾄ"
	normalized, indexMap, err := NormalizeNFKC(text, 2, len(text))
	assert.NoError(err)
	assert.Equal("テスト", normalized)
	assert.Equal([]int{2, 2, 2, 5, 5, 5, 8, 8, 8, 11}, indexMap)
}

func TestNormalize_ShouldMapContractingSegments(t *testing.T) {
	assert := assert.New(t)

	// The circled digit shrinks from three code units to one.
	normalized, indexMap, err := NormalizeNFKC("①", 0, 3)
	assert.NoError(err)
	assert.Equal("1", normalized)
	assert.Equal([]int{0, 3}, indexMap)
}

func TestNormalize_ShouldMapComposingSegments(t *testing.T) {
	assert := assert.New(t)

	// Halfwidth katakana plus voiced sound mark compose into a single
	// character, so both native characters share one segment.
	normalized, indexMap, err := NormalizeNFKC("ｶﾞ", 0, 6)
	assert.NoError(err)
	assert.Equal("ガ", normalized)
	assert.Equal([]int{0, 0, 0, 6}, indexMap)
}

func TestNormalize_ShouldRejectBadInput(t *testing.T) {
	assert := assert.New(t)

	_, _, err := NormalizeNFKC("abc", -1, 3)
	assert.ErrorIs(err, ErrInvalidRange)

	_, _, err = NormalizeNFKC("abc", 0, 6)
	assert.ErrorIs(err, ErrInvalidRange)

	_, _, err = NormalizeNFKC("abc", 2, 1)
	assert.ErrorIs(err, ErrInvalidRange)

	_, _, err = NormalizeNFKC("\xff\xfe", 0, 2)
	assert.ErrorIs(err, ErrMalformedText)
}

func TestIndexMap_EqualTextsShouldMapOneToOne(t *testing.T) {
	indexMap := IndexMapFromTexts("abc", 5, "abc")
	assert.Equal(t, []int{5, 6, 7, 8}, indexMap)
}

func TestIndexMap_ShouldSkipNativeOnlySpans(t *testing.T) {
	// The native X has no normalized counterpart and is stepped over.
	indexMap := IndexMapFromTexts("abcXdef", 0, "abcdef")
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7}, indexMap)
}

func TestIndexMap_ShouldAnchorNormalizedOnlySpans(t *testing.T) {
	// The normalized c was produced where the native text jumps from b
	// to d, so it anchors there.
	indexMap := IndexMapFromTexts("abdef", 0, "abcdef")
	assert.Equal(t, []int{0, 1, 2, 2, 3, 4, 5}, indexMap)
}

func TestIndexMap_ShouldStayOrderedOnRewrites(t *testing.T) {
	assert := assert.New(t)

	native := "ﾃｽﾄです"
	normalized := "テストです"
	indexMap := IndexMapFromTexts(native, 4, normalized)

	assert.Len(indexMap, len(normalized)+1)
	assert.Equal(4+len(native), indexMap[len(indexMap)-1])
	prev := 4
	for i, off := range indexMap {
		assert.GreaterOrEqual(off, prev, "entry %d", i)
		assert.LessOrEqual(off, 4+len(native), "entry %d", i)
		prev = off
	}
}
