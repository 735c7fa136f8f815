package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-claim/claim"
	"github.com/dzonerzy/go-claim/internal/intern"
)

// Normalizer benchmarks: short-flag splitting is the hot path of every
// parse, and interned dashed tokens should keep it cheap.

func BenchmarkExpandFlagsShortHeavy(b *testing.B) {
	args := []string{"-vqf", "-n=3", "-xyz", "input.txt"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = claim.ExpandFlags(args)
	}
}

func BenchmarkExpandFlagsLongForms(b *testing.B) {
	args := []string{"--output=result.txt", "--verbose", "--level=debug"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = claim.ExpandFlags(args)
	}
}

func BenchmarkExpandFlagsPassThrough(b *testing.B) {
	args := []string{"one", "two", "three", "four"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = claim.ExpandFlags(args)
	}
}

func BenchmarkInternDashed(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = intern.Dashed('v')
		_ = intern.Dashed('Z')
		_ = intern.Dashed('5')
	}
}

func BenchmarkInternWarmTable(b *testing.B) {
	in := intern.New(16)
	in.PreIntern([]string{"--output", "--verbose"})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = in.Intern("--output")
		_ = in.Intern("--verbose")
	}
}
