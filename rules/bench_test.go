package rules_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/haversack/rules"
)

// BenchmarkParse measures single-line parsing of a three-clause rule.
func BenchmarkParse(b *testing.B) {
	const line = "muted lime bags contain 1 wavy lime bag, 1 vibrant green bag, 3 light yellow bags."

	b.ReportAllocs()
	b.SetBytes(int64(len(line)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rules.Parse(line)
	}
}

// BenchmarkParse_NoOtherBags measures the terminal-rule fast path, where
// every clause is filtered away.
func BenchmarkParse_NoOtherBags(b *testing.B) {
	const line = "faded blue bags contain no other bags."

	b.ReportAllocs()
	b.SetBytes(int64(len(line)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rules.Parse(line)
	}
}

// BenchmarkBags_Synthetic measures batch parsing of a generated rule set
// where each color contains the two following colors.
func BenchmarkBags_Synthetic(b *testing.B) {
	const n = 1000
	items := make([]item, n)
	var total int
	for i := 0; i < n; i++ {
		line := fmt.Sprintf("tone %d bags contain %d tone %d bags, %d tone %d bags.", i, i%7+1, i+1, i%5+1, i+2)
		items[i] = item{line: line}
		total += len(line)
	}
	lines := sequence(items...)

	b.ReportAllocs()
	b.SetBytes(int64(total))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rules.Bags(lines)
	}
}
