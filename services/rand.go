package services

import (
	"fmt"
	"math/rand"
	"time"
)

// Rand is the randomness source behind every probabilistic mock behavior
// (route selection, price impact jitter, status transitions, simulated
// latency). Injecting a deterministic implementation pins those branches
// in tests.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Jitter(min, max time.Duration) time.Duration
}

func NewRand() Rand {
	return &systemRand{}
}

// systemRand delegates to math/rand's locked global source.
type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }
func (systemRand) Intn(n int) int   { return rand.Intn(n) }

func (systemRand) Jitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

// FixedRand replays predetermined values and sleeps for zero time. The
// sequences wrap around when exhausted; empty sequences yield zero.
type FixedRand struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (f *FixedRand) Float64() float64 {
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[f.fi%len(f.Floats)]
	f.fi++
	return v
}

func (f *FixedRand) Intn(n int) int {
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[f.ii%len(f.Ints)]
	f.ii++
	return v % n
}

func (f *FixedRand) Jitter(min, max time.Duration) time.Duration { return 0 }

// MockTransactionHash fabricates a 0x-prefixed 64 hex digit hash.
func MockTransactionHash(r Rand) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = digits[r.Intn(len(digits))]
	}
	return fmt.Sprintf("0x%s", buf)
}
