package bunsetsu

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestRuneSet_ShouldMatchLiteralsAndTables(t *testing.T) {
	assert := assert.New(t)

	s := NewRuneSet([]rune{'#', '@'}, unicode.Hiragana)
	assert.True(s.Contains('#'))
	assert.True(s.Contains('@'))
	assert.True(s.Contains('あ'))
	assert.False(s.Contains('ア'))
	assert.False(s.Contains('a'))
}

func TestRuneSet_NilSetShouldHoldNothing(t *testing.T) {
	var s *RuneSet
	assert.False(t, s.Contains('a'))
	assert.False(t, s.Contains('あ'))
}

func TestRuneSet_ShouldCopyItsInputs(t *testing.T) {
	assert := assert.New(t)

	runes := []rune{'#'}
	s := NewRuneSet(runes)
	runes[0] = '@'

	assert.True(s.Contains('#'))
	assert.False(s.Contains('@'))
}

func TestRuneSet_DigitOpenAlphaShouldAdmitRunCharacters(t *testing.T) {
	s := DefaultDigitOpenAlpha()

	testCases := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'7', true},
		{'７', true},
		{'（', true},
		{'«', true},
		{'あ', true},
		{'ー', true},
		{'。', false},
		{'」', false},
		{'-', false},
		{' ', false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, s.Contains(tc.r), "rune %q", tc.r)
	}
}

func TestRuneSet_ClosePunctShouldHoldTrailingPunctuation(t *testing.T) {
	s := DefaultClosePunct()

	testCases := []struct {
		r    rune
		want bool
	}{
		{'。', true},
		{'、', true},
		{'」', true},
		{'）', true},
		{'.', true},
		{',', true},
		{'-', true},
		{'_', true},
		{'»', true},
		{'あ', false},
		{'a', false},
		{'7', false},
		{'（', false},
		{'«', false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, s.Contains(tc.r), "rune %q", tc.r)
	}
}
