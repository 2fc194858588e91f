// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive random tests (slow).")

// Alphabets used to generate random text. Small alphabets produce many
// overlapping and adjacent matches.
const (
	AlphabetSmall   = "ab"
	AlphabetASCII   = "aAbBcC xyz.-"
	AlphabetUnicode = "aAαΑβΒ日本 \u212ak"
)

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func intn(rr *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rr.Intn(n)
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

// A Rand generates random test arguments.
type Rand struct {
	testing.TB
	rr *rand.Rand
}

func newRand(t *testing.T, seed int64) *Rand {
	if seed < 0 {
		seed = cryptoRandInt(t)
	}
	return &Rand{
		TB: &testWrapper{T: t},
		rr: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random int in [0, n), or 0 if n <= 0.
func (r *Rand) Intn(n int) int { return intn(r.rr, n) }

// Text returns a string of up to max runes drawn from alphabet.
func (r *Rand) Text(alphabet string, max int) string {
	rs := []rune(alphabet)
	n := r.Intn(max + 1)
	var b strings.Builder
	b.Grow(n * utf8.UTFMax)
	for i := 0; i < n; i++ {
		b.WriteRune(rs[r.rr.Intn(len(rs))])
	}
	return b.String()
}

// Needle returns a random substring of s most of the time and random text
// otherwise.
func (r *Rand) Needle(s, alphabet string, max int) string {
	rs := []rune(s)
	if len(rs) == 0 || r.rr.Intn(4) == 0 {
		return r.Text(alphabet, max)
	}
	i := r.rr.Intn(len(rs))
	n := 1 + r.Intn(min(max, len(rs)-i))
	return string(rs[i : i+n])
}

// ChangeCase randomly swaps the case of ASCII letters in s.
func (r *Rand) ChangeCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if ('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') && r.rr.Intn(3) != 0 {
			b[i] = c ^ ' '
		}
	}
	return string(b)
}

// RunRandom calls fn repeatedly with generators seeded from a fixed seed,
// the time and crypto/rand.
func RunRandom(t *testing.T, fn func(r *Rand)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the total number of test iterations to run.
	count := 2_500
	if testing.Short() {
		count /= 2
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 4_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			r := newRand(t, seed)
			for i := 0; i < count; i++ {
				fn(r)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fail() {
	c.T.Helper()
	c.T.Fail()
	c.check()
}

func (c *testWrapper) FailNow() {
	c.T.Helper()
	c.T.FailNow()
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}
