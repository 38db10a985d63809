package valvenet_test

import (
	"testing"

	"github.com/katalvlaran/advent2022/valvenet"
)

// Benchmarks run against the published ten-valve network. Parsing happens
// outside the timed region; each iteration exercises one full solve.

func BenchmarkAllDistances(b *testing.B) {
	net := mustNetwork(b, exampleRecords)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := net.AllDistances(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	net := mustNetwork(b, exampleRecords)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := valvenet.Solve(net); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_NoBound(b *testing.B) {
	net := mustNetwork(b, exampleRecords)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := valvenet.Solve(net, valvenet.WithoutBound()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolvePair(b *testing.B) {
	net := mustNetwork(b, exampleRecords)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := valvenet.SolvePair(net, valvenet.WithBudget(26)); err != nil {
			b.Fatal(err)
		}
	}
}
