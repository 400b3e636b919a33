// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"
	"math/bits"

	"github.com/grailbio/bitarray/errors"
	"github.com/grailbio/bitarray/log"
	"github.com/grailbio/bitarray/must"
	"github.com/grailbio/bitarray/simd"
)

// BitSet is a growable array of bits. The zero value is an empty
// BitSet ready to use.
type BitSet struct {
	// buf holds the bits; len(buf) is the allocated length. It is
	// reallocated as needed but never shrinks, and bytes are always zero
	// when they enter buf.
	buf []byte
	// n is the number of significant bits. n <= len(buf)*8, and every
	// bit at or past n is zero.
	n int
}

// New returns a BitSet of n bits, all zero, with room for capacity bits
// before any reallocation. When n exceeds capacity, room for n bits is
// allocated instead. It panics if either argument is negative.
func New(capacity, n int) *BitSet {
	if capacity < 0 || n < 0 {
		must.Neverf("bitset.New: negative capacity %d or length %d", capacity, n)
	}
	nByte := simd.NBytes(capacity)
	if need := simd.NBytes(n); need > nByte {
		nByte = need
	}
	b := &BitSet{n: n}
	if nByte > 0 {
		must.Nil(b.Grow(nByte), "bitset.New")
	}
	return b
}

// Size returns the number of significant bits.
func (b *BitSet) Size() int {
	return b.n
}

// Cap returns the number of bits that fit in the allocated buffer.
func (b *BitSet) Cap() int {
	return len(b.buf) << 3
}

// Grow ensures that at least nByte bytes are allocated, zero-filling
// any bytes it adds. It never shrinks the buffer, and it does not
// change Size. Grow returns an error of kind errors.Invalid for a
// negative nByte and of kind errors.OOM when the allocation fails.
func (b *BitSet) Grow(nByte int) error {
	if nByte < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("bitset: negative byte length %d", nByte))
	}
	oldLen := len(b.buf)
	if nByte <= oldLen {
		return nil
	}
	if log.At(log.Debug) {
		log.Debug.Printf("bitset: growing buffer from %d to %d bytes", oldLen, nByte)
	}
	if nByte <= cap(b.buf) {
		b.buf = b.buf[:nByte]
		ext := b.buf[oldLen:]
		for i := range ext {
			ext[i] = 0
		}
		return nil
	}
	// Reserve spare capacity so that a run of Appends reallocates a
	// logarithmic number of times. The spare bytes are not part of the
	// allocated length until the branch above zeroes them.
	newCap := 2 * cap(b.buf)
	if newCap < nByte {
		newCap = nByte
	}
	buf, err := alloc(nByte, newCap)
	if err != nil {
		return err
	}
	copy(buf, b.buf)
	b.buf = buf
	return nil
}

// alloc returns nByte zeroed bytes with capacity nCap. A failed
// allocation is reported as an error instead of a runtime panic.
func alloc(nByte, nCap int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.E(errors.OOM, errors.Fatal, fmt.Sprintf("bitset: allocating %d bytes: %v", nCap, r))
		}
	}()
	return make([]byte, nByte, nCap), nil
}

// Get returns bit i. Bits past the allocated buffer, including those at
// negative indices, read as false.
func (b *BitSet) Get(i int) bool {
	// Unsigned division by a power-of-2 constant compiles to a right-shift,
	// and maps negative indices past the end of any buffer.
	byteIdx := uint(i) / 8
	if byteIdx >= uint(len(b.buf)) {
		return false
	}
	return b.buf[byteIdx]&(1<<(uint(i)%8)) != 0
}

// Set sets bit i to v, growing the buffer to exactly i/8+1 bytes when
// it is too short, and Size to i+1 when i >= Size(). It panics if i is
// negative or if the buffer cannot be grown.
func (b *BitSet) Set(i int, v bool) {
	if i < 0 {
		must.Neverf("bitset.Set: negative index %d", i)
	}
	byteIdx := uint(i) / 8
	if byteIdx >= uint(len(b.buf)) {
		must.Nil(b.Grow(int(byteIdx)+1), "bitset.Set")
	}
	if i >= b.n {
		b.n = i + 1
	}
	mask := byte(1) << (uint(i) % 8)
	if v {
		b.buf[byteIdx] |= mask
	} else {
		b.buf[byteIdx] &^= mask
	}
}

// Append adds v as bit Size(), increasing Size by one.
func (b *BitSet) Append(v bool) {
	b.Set(b.n, v)
}

// SetBits returns the ascending indices of the set bits.
func (b *BitSet) SetBits() []int {
	nFull := b.n >> 3
	rem := uint(b.n) & 7
	out := make([]int, 0, b.Count())
	for byteIdx, v := range b.buf[:nFull] {
		base := byteIdx << 3
		for v != 0 {
			out = append(out, base+bits.TrailingZeros8(v))
			v &= v - 1
		}
	}
	if rem != 0 {
		v := b.buf[nFull]
		base := nFull << 3
		for bit := 0; bit < int(rem); bit++ {
			if v&1 != 0 {
				out = append(out, base+bit)
			}
			v >>= 1
		}
	}
	return out
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	return simd.Popcnt(b.buf[:simd.NBytes(b.n)])
}

// Equal tells whether b and other have the same size and the same bits.
func (b *BitSet) Equal(other *BitSet) bool {
	if b.n != other.n {
		return false
	}
	nByte := simd.NBytes(b.n)
	return simd.FirstUnequal8(b.buf[:nByte], other.buf[:nByte], 0) == nByte
}

// Clone returns a deep copy of b with the same allocated length.
func (b *BitSet) Clone() *BitSet {
	c := &BitSet{n: b.n}
	if len(b.buf) > 0 {
		must.Nil(c.Grow(len(b.buf)), "bitset.Clone")
		copy(c.buf, b.buf)
	}
	return c
}

// Bytes returns a copy of the (Size()+7)/8 bytes holding the significant
// bits. Together with Size, it is enough to rebuild the BitSet with
// FromBytes.
func (b *BitSet) Bytes() []byte {
	return append([]byte(nil), b.buf[:simd.NBytes(b.n)]...)
}

// FromBytes returns a BitSet of n bits copied from buf, laid out as
// described in the package documentation. Bits at or past n are
// cleared. It returns an error of kind errors.Invalid when buf holds
// fewer than n bits or n is negative.
func FromBytes(buf []byte, n int) (*BitSet, error) {
	if n < 0 || len(buf) < simd.NBytes(n) {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("bitset: %d bytes cannot hold %d bits", len(buf), n))
	}
	nByte := simd.NBytes(n)
	b := &BitSet{n: n}
	if err := b.Grow(nByte); err != nil {
		return nil, err
	}
	copy(b.buf, buf[:nByte])
	b.clearTail()
	return b, nil
}

// clearTail zeroes the bits of the last significant byte at positions
// >= n.
func (b *BitSet) clearTail() {
	if rem := uint(b.n) & 7; rem != 0 {
		b.buf[b.n>>3] &= byte(1)<<rem - 1
	}
}
