// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/checkadd/blob/master/LICENSE.md

package checkadd_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/offchainlabs/checkadd"
	"github.com/offchainlabs/checkadd/util/testhelpers"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		augend, addend, expected uint64
	}{
		{0, 0, 0},
		{2, 3, 5},
		{1, math.MaxUint64 - 1, math.MaxUint64},
		{math.MaxUint64, 0, math.MaxUint64},
		{0, math.MaxUint64, math.MaxUint64},
		{1 << 63, (1 << 63) - 1, math.MaxUint64},
	}

	for _, tc := range tests {
		sum := checkadd.Add(tc.augend, tc.addend)
		if sum != tc.expected {
			Fail(t, "Add(", tc.augend, ",", tc.addend, ") =", sum, "want", tc.expected)
		}
	}
}

func TestAddCommutes(t *testing.T) {
	for i := 0; i < 100000; i++ {
		augend, addend := testhelpers.RandomSumPair()
		left := checkadd.Add(augend, addend)
		right := checkadd.Add(addend, augend)
		if left != right {
			Fail(t, "Add is not commutative for", augend, "and", addend)
		}
	}
}

func TestAddIdentity(t *testing.T) {
	for i := 0; i < 100000; i++ {
		value := testhelpers.RandomUint64(0, math.MaxUint64-1)
		if checkadd.Add(value, 0) != value {
			Fail(t, "adding zero changed", value)
		}
	}
	if checkadd.Add(math.MaxUint64, 0) != math.MaxUint64 {
		Fail(t, "adding zero changed the max uint64")
	}
}

func expectPanic(t *testing.T, augend, addend uint64) {
	t.Helper()
	defer func() {
		recovered := recover()
		if recovered == nil {
			Fail(t, "expected a panic adding", augend, "and", addend, "but got none")
		}
		message, ok := recovered.(string)
		if !ok || !strings.Contains(message, "arithmetic overflow") {
			Fail(t, "panic does not identify an arithmetic overflow:", recovered)
		}
	}()
	checkadd.Add(augend, addend)
}

func TestAddOverflowPanics(t *testing.T) {
	expectPanic(t, math.MaxUint64, 1)
	expectPanic(t, 1, math.MaxUint64)
	expectPanic(t, 1<<63, 1<<63)
	expectPanic(t, math.MaxUint64, math.MaxUint64)

	for i := 0; i < 100000; i++ {
		augend, addend := testhelpers.RandomOverflowingPair()
		expectPanic(t, augend, addend)
	}
}

func TestAddConcurrent(t *testing.T) {
	const callers = 32
	const callsEach = 4096

	var wg sync.WaitGroup
	failures := make(chan string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsEach; j++ {
				augend := testhelpers.RandomUint64(0, 1<<62)
				addend := testhelpers.RandomUint64(0, 1<<62)
				if checkadd.Add(augend, addend) != augend+addend {
					select {
					case failures <- "wrong concurrent sum":
					default:
					}
					return
				}
			}
		}()
	}
	wg.Wait()
	close(failures)
	for failure := range failures {
		Fail(t, failure)
	}
}

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = checkadd.Add(uint64(i), 1)
	}
}

func BenchmarkAddUnchecked(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = uint64(i) + 1
	}
}

func Fail(t *testing.T, printables ...interface{}) {
	t.Helper()
	testhelpers.FailImpl(t, printables...)
}
