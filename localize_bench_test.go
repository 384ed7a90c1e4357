package localize

import "testing"

func BenchmarkLocalizeRelease(b *testing.B) {
	bar := Own(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := bar.Localize(i)
		g.Release()
	}
	if bar.Depth() != 0 {
		b.Fatalf("expected drained stack, got depth %d", bar.Depth())
	}
}

func BenchmarkLocalizeNested(b *testing.B) {
	bar := Own(0)
	guards := make([]*Guard, 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range guards {
			guards[j] = bar.Localize(j)
		}
		for j := len(guards) - 1; j >= 0; j-- {
			guards[j].Release()
		}
	}
	if got := bar.Get(); got != 0 {
		b.Fatalf("expected restored base value, got %d", got)
	}
}
