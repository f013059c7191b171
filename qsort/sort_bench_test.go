package qsort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31()
	}
	return data
}

func BenchmarkSort_Int32_100(b *testing.B) {
	benchmarkSort(b, 100, FinisherInsertion)
}

func BenchmarkSort_Int32_1000(b *testing.B) {
	benchmarkSort(b, 1000, FinisherInsertion)
}

func BenchmarkSort_Int32_10000(b *testing.B) {
	benchmarkSort(b, 10000, FinisherInsertion)
}

func BenchmarkSort_Int32_100000(b *testing.B) {
	benchmarkSort(b, 100000, FinisherInsertion)
}

func BenchmarkSortSelection_Int32_100000(b *testing.B) {
	benchmarkSort(b, 100000, FinisherSelection)
}

func benchmarkSort(b *testing.B, n int, f Finisher) {
	ref := generateInt32(n)
	data := make([]int32, n)
	s, err := New(WithFinisher(f))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := s.Sort(data); err != nil {
			b.Fatal(err)
		}
	}
}

// Stdlib comparison benchmarks
func BenchmarkStdlib_Int32_10000(b *testing.B) {
	benchmarkStdlib(b, 10000)
}

func BenchmarkStdlib_Int32_100000(b *testing.B) {
	benchmarkStdlib(b, 100000)
}

func benchmarkStdlib(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func BenchmarkIsSorted_Int32_100000(b *testing.B) {
	data := generateInt32(100000)
	slices.Sort(data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !IsSorted(data) {
			b.Fatal("not sorted")
		}
	}
}
