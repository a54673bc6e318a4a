package bunsetsu

import "unicode/utf8"

const (
	// blockDigits is the fixed width of a block code rendering.
	blockDigits = 3

	// invalidChar marks a window slot holding no character.
	invalidChar = rune(-1)

	// sentinelBlock is the block label of the slots beyond the scanned
	// range. A model may carry explicit weights for it to score range
	// edges.
	sentinelBlock = "999"
)

// Element is a single feature unit of the scoring window: one character
// together with the zero-padded decimal code of its Unicode block. It is a
// plain value with a fixed-size buffer, so filling and sliding the window
// never touches the heap.
type Element struct {
	char  rune
	block [blockDigits]byte
	n     uint8
}

// Set stores the character and its block code. Codes shorter than three
// digits are left-padded with zeros, longer ones keep their last three
// digits.
func (el *Element) Set(r rune, code string) {
	el.char = r
	if len(code) > blockDigits {
		code = code[len(code)-blockDigits:]
	}
	pad := blockDigits - len(code)
	for i := 0; i < pad; i++ {
		el.block[i] = '0'
	}
	copy(el.block[pad:], code)
	el.n = blockDigits
}

// setRune stores the character and classifies its block in place, bypassing
// the string conversion of BlockCode.
func (el *Element) setRune(r rune) {
	el.char = r
	el.n = uint8(len(appendBlockCode(el.block[:0], r)))
}

// Character returns the stored character, or -1 for a sentinel slot.
func (el *Element) Character() rune {
	return el.char
}

// Block returns the stored block code digits. The returned slice aliases
// the element's buffer and must not be modified.
func (el *Element) Block() []byte {
	return el.block[:el.n]
}

// BlockLen returns the number of valid block code digits.
func (el *Element) BlockLen() int {
	return int(el.n)
}

// Sentinel reports whether the slot lies beyond the scanned range.
func (el *Element) Sentinel() bool {
	return el.char < 0
}

// width returns the UTF-8 encoded length of the stored character.
func (el *Element) width() int {
	return utf8.RuneLen(el.char)
}

// sentinel returns the element used to pad window slots beyond the range.
func sentinel() Element {
	var el Element
	el.Set(invalidChar, sentinelBlock)
	return el
}
