package bunsetsu

import (
	"fmt"
	"unicode/utf8"
)

// windowSize is the number of elements the scoring context holds. The
// candidate boundary always sits between slot 2 and slot 3, leaving two
// characters of context before it and three after.
const windowSize = 6

// window is the sliding scoring context: a fixed array of six elements with
// no backing heap allocation. Slots that fall outside the scored range hold
// sentinel elements.
type window [windowSize]Element

// initWindow seeds w for the start of the normalized range: two leading
// sentinels followed by up to four characters of s. Missing characters are
// padded with sentinels. It returns the number of code units consumed, which
// is the offset of the next character to slide in.
func initWindow(s string, w *window) (int, error) {
	w[0], w[1] = sentinel(), sentinel()
	var consumed int
	for i := 2; i < windowSize; i++ {
		if consumed >= len(s) {
			w[i] = sentinel()
			continue
		}
		r, size := utf8.DecodeRuneInString(s[consumed:])
		if r == utf8.RuneError && size < 2 {
			return 0, fmt.Errorf("%w: invalid UTF-8 sequence at offset %d", ErrMalformedText, consumed)
		}
		w[i].setRune(r)
		consumed += size
	}
	return consumed, nil
}

// slide drops the leftmost element, shifts the rest down one slot and places
// el in the last slot.
func (w *window) slide(el Element) {
	copy(w[:windowSize-1], w[1:])
	w[windowSize-1] = el
}
