package bunsetsu

import "unicode/utf8"

// Names of the built-in feature key schemes. The version suffix is part of
// the name: a model declares the exact scheme it was trained with and a
// future change to a scheme's key layout registers under a new name instead
// of silently altering an existing one.
const (
	// SchemeUnigram emits one key per non-sentinel window slot, labeled by
	// the slot's position relative to the candidate boundary:
	//
	//	pos(-3)=c pos(-2)=c pos(-1)=c pos(0)=c pos(1)=c pos(2)=c
	SchemeUnigram = "unigram/1"

	// SchemeNgram emits unigram, bigram and trigram keys over both the
	// window characters (UW/BW/TW) and their block codes (UB/BB/TB).
	SchemeNgram = "ngram/2"
)

// maxFeatures is the largest number of keys any built-in scheme emits for a
// single candidate.
const maxFeatures = 26

// A Scheme turns the current window into the feature keys a model was
// trained with. Schemes are stateless; the same window always yields the
// same keys in the same order.
type Scheme interface {
	// Name returns the versioned identifier models reference.
	Name() string

	// appendKeys appends one key per feature to dst and returns the
	// extended slice. buf is scratch space for assembling keys; its
	// contents are garbage afterwards.
	appendKeys(dst []string, buf []byte, w *window) []string
}

var schemes = map[string]Scheme{
	SchemeUnigram: unigramScheme{},
	SchemeNgram:   ngramScheme{},
}

// schemeByName resolves a scheme name declared by a model resource.
func schemeByName(name string) (Scheme, bool) {
	sc, ok := schemes[name]
	return sc, ok
}

type unigramScheme struct{}

var unigramLabels = [windowSize]string{
	"pos(-3)=", "pos(-2)=", "pos(-1)=", "pos(0)=", "pos(1)=", "pos(2)=",
}

func (unigramScheme) Name() string { return SchemeUnigram }

func (unigramScheme) appendKeys(dst []string, buf []byte, w *window) []string {
	for i := range w {
		if w[i].Sentinel() {
			continue
		}
		buf = append(buf[:0], unigramLabels[i]...)
		buf = utf8.AppendRune(buf, w[i].Character())
		dst = append(dst, string(buf))
	}
	return dst
}

type ngramScheme struct{}

// ngramFeature names the window slots whose contents are concatenated after
// the prefix. The layout follows the BudouX feature set: slots 0..5 are the
// six window characters, the candidate boundary sits between slots 2 and 3.
type ngramFeature struct {
	prefix string
	slots  []uint8
}

var ngramCharFeatures = []ngramFeature{
	{"UW1:", []uint8{0}},
	{"UW2:", []uint8{1}},
	{"UW3:", []uint8{2}},
	{"UW4:", []uint8{3}},
	{"UW5:", []uint8{4}},
	{"UW6:", []uint8{5}},
	{"BW1:", []uint8{1, 2}},
	{"BW2:", []uint8{2, 3}},
	{"BW3:", []uint8{3, 4}},
	{"TW1:", []uint8{0, 1, 2}},
	{"TW2:", []uint8{1, 2, 3}},
	{"TW3:", []uint8{2, 3, 4}},
	{"TW4:", []uint8{3, 4, 5}},
}

var ngramBlockFeatures = []ngramFeature{
	{"UB1:", []uint8{0}},
	{"UB2:", []uint8{1}},
	{"UB3:", []uint8{2}},
	{"UB4:", []uint8{3}},
	{"UB5:", []uint8{4}},
	{"UB6:", []uint8{5}},
	{"BB1:", []uint8{1, 2}},
	{"BB2:", []uint8{2, 3}},
	{"BB3:", []uint8{3, 4}},
	{"TB1:", []uint8{0, 1, 2}},
	{"TB2:", []uint8{1, 2, 3}},
	{"TB3:", []uint8{2, 3, 4}},
	{"TB4:", []uint8{3, 4, 5}},
}

func (ngramScheme) Name() string { return SchemeNgram }

// appendKeys emits the character features first, skipping any n-gram that
// touches a sentinel slot, then the block features, where sentinels render
// as the out-of-range code 999 so that models can weight range edges.
func (ngramScheme) appendKeys(dst []string, buf []byte, w *window) []string {
next:
	for _, f := range ngramCharFeatures {
		buf = append(buf[:0], f.prefix...)
		for _, s := range f.slots {
			if w[s].Sentinel() {
				continue next
			}
			buf = utf8.AppendRune(buf, w[s].Character())
		}
		dst = append(dst, string(buf))
	}
	for _, f := range ngramBlockFeatures {
		buf = append(buf[:0], f.prefix...)
		for _, s := range f.slots {
			buf = append(buf, w[s].Block()...)
		}
		dst = append(dst, string(buf))
	}
	return dst
}
