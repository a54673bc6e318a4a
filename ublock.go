package bunsetsu

// BlockCode returns the Unicode block of r as a fixed-width, zero-padded
// three digit decimal string. Characters outside every known block map to
// "000". The mapping is pure: equal input runes always produce the same
// code, which keeps feature keys stable across calls and across processes.
func BlockCode(r rune) string {
	return string(appendBlockCode(make([]byte, 0, blockDigits), r))
}

// appendBlockCode appends the three block code digits of r to dst and
// returns the extended slice. It is the allocation-free form of BlockCode
// used on the scan path.
func appendBlockCode(dst []byte, r rune) []byte {
	id := blockID(r)
	return append(dst, '0'+byte(id/100%10), '0'+byte(id/10%10), '0'+byte(id%10))
}

// blockID resolves the numeric block identifier of r. Runes below 0x80 skip
// the search: the first table entry is Basic Latin.
func blockID(r rune) int32 {
	if r < 0 {
		return 0
	}
	if r < 0x80 {
		return unicodeBlocks[0][2]
	}
	b := blockSearch(unicodeBlocks, r)
	if r < b[0] || r > b[1] {
		return 0
	}
	return b[2]
}

// blockSearch returns the last table entry whose range start is <= r. The
// table must be sorted by range start. If r precedes the first entry, the
// first entry is returned and the caller's bounds check rejects it.
func blockSearch(table [][3]int32, r rune) [3]int32 {
	lo, hi := 0, len(table)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if int32(r) < table[mid][0] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return table[lo]
}
