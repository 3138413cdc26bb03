// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package candidate defines the transform implementations under test.
package candidate

// =============================================================================
// ASCII UPPERCASE CANDIDATES
// =============================================================================

// UpperFunc writes the ASCII-uppercased form of src into dst. dst must be
// at least len(src) bytes; every byte of dst[:len(src)] is written. Bytes
// outside 'a'..'z' are copied through unchanged. src is never modified, so
// one shared dataset stays identical for every candidate in a run.
type UpperFunc func(dst, src []byte)

// Upper is a named uppercase implementation. Immutable after registration.
type Upper struct {
	Name string
	Fn   UpperFunc
}

var upperTable = []Upper{
	{Name: "branchy", Fn: upperBranchy},
	{Name: "blend", Fn: upperBlend},
	{Name: "subtract", Fn: upperSubtract},
}

// Uppers returns the uppercase candidates in registration order.
// Callers must not modify the returned slice.
func Uppers() []Upper {
	return upperTable
}

// upperBranchy uses a per-byte conditional.
func upperBranchy(dst, src []byte) {
	for i, c := range src {
		if c >= 'a' && c <= 'z' {
			c -= 32
		}
		dst[i] = c
	}
}

// upperBlend multiplies the shifted and unshifted byte by complementary
// 0/1 selectors and sums them.
func upperBlend(dst, src []byte) {
	for i, c := range src {
		isLower := boolToByte(c >= 'a' && c <= 'z')
		dst[i] = c*(1-isLower) + (c-32)*isLower
	}
}

// upperSubtract subtracts 32 times the selector, so non-letters subtract
// zero.
func upperSubtract(dst, src []byte) {
	for i, c := range src {
		dst[i] = c - 32*boolToByte(c >= 'a' && c <= 'z')
	}
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
