// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/checkadd/blob/master/LICENSE.md

// Package checkadd supplies checked unsigned 64-bit addition.
//
// Overflow is treated as a violation of the caller's contract rather than a
// runtime condition: when the true sum of the operands does not fit in 64
// bits, Add panics instead of wrapping or returning an error. Callers that
// cannot rule out overflow must bound their operands beforehand.
package checkadd

import (
	"fmt"
	"math"
)

// Add two uint64's, panicking should the sum overflow.
// The check runs before the addition, so a wrapped value never exists.
func Add(augend uint64, addend uint64) uint64 {
	if addend > math.MaxUint64-augend {
		panic(fmt.Sprintf("arithmetic overflow: %v + %v exceeds the max uint64", augend, addend))
	}
	return augend + addend
}
