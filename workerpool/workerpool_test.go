// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 100, MinGrain*4 + 7, MinGrain * 16} {
		results := make([]int, n)
		var calls atomic.Int32
		pool.ParallelFor(n, func(start, end int) {
			calls.Add(1)
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})
		for i := range n {
			if results[i] != i*2 {
				t.Fatalf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
		if n > 0 && n <= MinGrain && calls.Load() != 1 {
			t.Errorf("n=%d: %d calls, want 1", n, calls.Load())
		}
		if int(calls.Load()) > pool.NumWorkers() {
			t.Errorf("n=%d: %d calls exceed %d workers", n, calls.Load(), pool.NumWorkers())
		}
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	results := make([]int, n)
	pool.ParallelForBatched(n, 64, func(start, end int) {
		if end-start > 64 {
			t.Errorf("batch [%d, %d) larger than 64", start, end)
		}
		for i := start; i < end; i++ {
			results[i] += i * 2
		}
	})
	for i := range n {
		if results[i] != i*2 {
			t.Fatalf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestClosedAndNilPoolRunInline(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()

	var nilPool *Pool
	for _, p := range []*Pool{pool, nilPool} {
		var sum int
		p.ParallelFor(MinGrain*8, func(start, end int) {
			sum += end - start
		})
		p.ParallelForBatched(10, 3, func(start, end int) {
			sum += end - start
		})
		if sum != MinGrain*8+10 {
			t.Errorf("sum = %d, want %d", sum, MinGrain*8+10)
		}
	}
}
