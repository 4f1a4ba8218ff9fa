package orderedset

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

func benchValues(kind distributionKind, n, keyRange int) []int {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, n)
	switch kind {
	case distUniform:
		for i := range values {
			values[i] = rng.Intn(keyRange)
		}
	case distAscending:
		for i := range values {
			values[i] = i
		}
	case distZipf:
		zipf := rand.NewZipf(rng, 1.1, 1, uint64(keyRange-1))
		for i := range values {
			values[i] = int(zipf.Uint64())
		}
	}
	return values
}

func BenchmarkInsert(b *testing.B) {
	distributions := []struct {
		name string
		kind distributionKind
	}{
		{name: "Uniform", kind: distUniform},
		{name: "Ascending", kind: distAscending},
		{name: "Zipfian", kind: distZipf},
	}

	const keyRange = 1 << 16

	for _, dist := range distributions {
		b.Run(dist.name, func(b *testing.B) {
			values := benchValues(dist.kind, b.N, keyRange)
			s := New[int]()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Insert(values[i])
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	for _, size := range []int{1 << 10, 1 << 14, 1 << 18} {
		b.Run(fmt.Sprintf("N%d", size), func(b *testing.B) {
			s := New[int]()
			for i := range size {
				s.Insert(i)
			}
			probes := benchValues(distUniform, b.N, size*2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Contains(probes[i])
			}
		})
	}
}

func BenchmarkInsertDeleteChurn(b *testing.B) {
	const keyRange = 1 << 12
	s := New[int]()
	for i := range keyRange / 2 {
		s.Insert(i)
	}
	values := benchValues(distUniform, b.N, keyRange)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := values[i]
		if i%2 == 0 {
			s.Insert(v)
		} else {
			s.Delete(v)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	const size = 1 << 14
	s := New[int]()
	for i := range size {
		s.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range s.All() {
			sum += v
		}
		_ = sum
	}
}

// TestOperationLatencySmoke bounds the cost of a bulk workload: 10k
// inserts plus spot searches and deletes should finish near-instantly on
// anything resembling commodity hardware.
func TestOperationLatencySmoke(t *testing.T) {
	start := time.Now()

	s := New[int]()
	for i := range 10000 {
		s.Insert(i)
	}
	for i := 0; i < 100; i++ {
		if !s.Contains(i * 100) {
			t.Fatalf("expected %d to be present", i*100)
		}
	}
	for i := 0; i < 100; i++ {
		if !s.Delete(i * 100) {
			t.Fatalf("expected to delete %d", i*100)
		}
	}

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("bulk workload took %v, expected well under a second", elapsed)
	}
	if got := s.Len(); got != 9900 {
		t.Fatalf("expected 9900 elements after deletions, got %d", got)
	}
}
