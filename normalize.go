package bunsetsu

import (
	"fmt"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/text/unicode/norm"
)

// NormalizeNFKC returns the NFKC form of text[rangeStart:rangeEnd] together
// with an index map suitable for DivideUpRange. Every normalized offset maps
// to the native offset of the segment it was produced from, and the final
// entry is rangeEnd. When the range is already normalized the input slice is
// returned with a nil map, meaning identity.
func NormalizeNFKC(text string, rangeStart, rangeEnd int) (string, []int, error) {
	if rangeStart < 0 || rangeEnd > len(text) || rangeStart > rangeEnd {
		return "", nil, fmt.Errorf("%w: [%d, %d) over %d code units", ErrInvalidRange, rangeStart, rangeEnd, len(text))
	}
	src := text[rangeStart:rangeEnd]
	if !utf8.ValidString(src) {
		return "", nil, fmt.Errorf("%w: range [%d, %d) is not valid UTF-8", ErrMalformedText, rangeStart, rangeEnd)
	}
	if norm.NFKC.IsNormalString(src) {
		return src, nil, nil
	}

	var it norm.Iter
	it.InitString(norm.NFKC, src)
	normalized := make([]byte, 0, len(src))
	indexMap := make([]int, 0, len(src)+1)
	for !it.Done() {
		segStart := it.Pos()
		seg := it.Next()
		for range seg {
			indexMap = append(indexMap, rangeStart+segStart)
		}
		normalized = append(normalized, seg...)
	}
	indexMap = append(indexMap, rangeEnd)
	return string(normalized), indexMap, nil
}

// IndexMapFromTexts derives an index map for text that was normalized
// outside this package. native is the original text of the range starting at
// native offset rangeStart, normalized its externally produced rendering.
// The map is built by walking the differences between the two strings:
// normalized spans without a native counterpart anchor to the native offset
// they were produced at, native spans without a normalized counterpart are
// skipped over.
func IndexMapFromTexts(native string, rangeStart int, normalized string) []int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(normalized, native, false)

	indexMap := make([]int, 0, len(normalized)+1)
	nativePos := rangeStart
	for _, diff := range diffs {
		n := len(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			for i := 0; i < n; i++ {
				indexMap = append(indexMap, nativePos+i)
			}
			nativePos += n
		case diffmatchpatch.DiffDelete:
			// Normalized-only bytes anchor to the position they
			// replaced.
			for i := 0; i < n; i++ {
				indexMap = append(indexMap, nativePos)
			}
		case diffmatchpatch.DiffInsert:
			nativePos += n
		}
	}
	indexMap = append(indexMap, nativePos)
	return indexMap
}
