// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package simd provides word-at-a-time implementations of the bulk
// byte-array operations behind bitset.BitSet: AND, OR, NOT and
// population count.
//
// Every function processes as many 64-bit words as it can through a
// word view of its arguments (see unsafe.BytesToWords), then finishes
// the remaining bytes one at a time. The word view is only used when
// every slice involved is 8-byte aligned; otherwise the whole call
// takes the byte path. The chunk width is fixed at 64 bits on every
// platform, and the two paths are required to produce bit-identical
// results; the tests in this package check both against a
// straightforward per-byte loop.
//
// Unlike the functions they are modeled on, none of these read or
// write past the end of the given slices, and all of them panic when
// their documented length preconditions are not met.
package simd
