package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	seen := make([]int32, n)
	var calls int64

	For(n, func(lo, hi int) {
		atomic.AddInt64(&calls, 1)
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("row %d visited %d times, want 1", i, c)
		}
	}
	if calls < 2 {
		t.Errorf("Expected work split across goroutines, got %d calls", calls)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var ranges [][2]int
	For(100, func(lo, hi int) {
		ranges = append(ranges, [2]int{lo, hi})
	}, cfg)

	if len(ranges) != 1 || ranges[0] != [2]int{0, 100} {
		t.Errorf("Expected single range [0, 100), got %v", ranges)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4

	var calls int64
	n := cfg.MinChunkSize - 1

	For(n, func(lo, hi int) {
		atomic.AddInt64(&calls, 1)
		if lo != 0 || hi != n {
			t.Errorf("Expected range [0, %d), got [%d, %d)", n, lo, hi)
		}
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestFor_Empty(t *testing.T) {
	var mu sync.Mutex
	total := 0
	For(0, func(lo, hi int) {
		mu.Lock()
		total += hi - lo
		mu.Unlock()
	}, DefaultConfig())

	if total != 0 {
		t.Errorf("Expected no rows, got %d", total)
	}
}
