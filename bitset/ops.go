// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"

	"github.com/grailbio/bitarray/errors"
	"github.com/grailbio/bitarray/must"
	"github.com/grailbio/bitarray/simd"
)

// checkOperand fails with a fatal Precondition error if b's length
// exceeds its allocation. A BitSet built through this package's API
// can't get into that state; a violation means the struct has been
// corrupted, and operating on it would read out of bounds.
func checkOperand(op string, b *BitSet) {
	if b.n <= len(b.buf)<<3 {
		return
	}
	must.Nil(errors.E(errors.Precondition, errors.Fatal,
		fmt.Sprintf("operand has %d bits but %d allocated", b.n, len(b.buf)<<3)), "bitset.", op)
}

// newResult returns an n-bit BitSet backed by exactly nByte zero bytes.
func newResult(op string, nByte, n int) *BitSet {
	r := &BitSet{n: n}
	if nByte > 0 {
		must.Nil(r.Grow(nByte), "bitset.", op)
	}
	return r
}

// Not returns the complement of b: a new BitSet of the same size whose
// bits below Size are inverted. The result's bits at or past Size are
// zero, like every other BitSet's.
func (b *BitSet) Not() *BitSet {
	checkOperand("Not", b)
	nByte := simd.NBytes(b.n)
	r := newResult("Not", len(b.buf), b.n)
	simd.NotMasked(r.buf[:nByte], b.buf[:nByte], b.n)
	return r
}

// Or returns the union of b and other as a new BitSet of size
// max(b.Size(), other.Size()), so that a.Or(b) and b.Or(a) are equal
// even when the operand with the larger buffer has the smaller size.
// The result's buffer is as long as the longer of the two buffers.
func (b *BitSet) Or(other *BitSet) *BitSet {
	checkOperand("Or", b)
	checkOperand("Or", other)
	shorter, longer := b, other
	if len(shorter.buf) > len(longer.buf) {
		shorter, longer = longer, shorter
	}
	overlap := len(shorter.buf)
	r := newResult("Or", len(longer.buf), maxInt(b.n, other.n))
	simd.Or(r.buf[:overlap], shorter.buf, longer.buf[:overlap])
	// OR with the shorter operand's implicit zero bytes is the identity.
	copy(r.buf[overlap:], longer.buf[overlap:])
	return r
}

// And returns the intersection of b and other as a new BitSet of size
// max(b.Size(), other.Size()). Bits past the shorter operand's
// allocation are zero in the result.
func (b *BitSet) And(other *BitSet) *BitSet {
	checkOperand("And", b)
	checkOperand("And", other)
	overlap := len(b.buf)
	nByte := len(other.buf)
	if nByte < overlap {
		overlap, nByte = nByte, overlap
	}
	r := newResult("And", nByte, maxInt(b.n, other.n))
	// r.buf[overlap:] stays as allocated: zero.
	simd.And(r.buf[:overlap], b.buf[:overlap], other.buf[:overlap])
	return r
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
