package bunsetsu

import (
	"testing"
)

func Benchmark_DivideUpRange(b *testing.B) {
	e, err := New(Config{})
	if err != nil {
		b.Fatalf("could not load the embedded model: %v", err)
	}

	text := "今日はいい天気です。明日も晴れ。"
	breaks := make([]int, 0, 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		breaks = breaks[:0]
		breaks, err = e.DivideUpRange(text, 0, len(text), text, nil, breaks)
		if err != nil {
			b.Fatalf("error dividing the text range: %v", err)
		}
	}
}

func Benchmark_BlockCode(b *testing.B) {
	runes := []rune("aあア漢아𝔸😀")
	var el Element
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		el.setRune(runes[i%len(runes)])
	}
}
