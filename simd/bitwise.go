// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// And sets dst[pos] := src1[pos] & src2[pos] for every position.
// It panics if the three slices do not have the same length.
func And(dst, src1, src2 []byte) {
	nByte := len(dst)
	if len(src1) != nByte || len(src2) != nByte {
		panic("And() requires len(src1) == len(src2) == len(dst).")
	}
	pos := 0
	if wDst, wSrc1, wSrc2 := words3(dst, src1, src2); wDst != nil {
		for i := range wDst {
			wDst[i] = wSrc1[i] & wSrc2[i]
		}
		pos = len(wDst) << Log2BytesPerWord
	}
	for ; pos != nByte; pos++ {
		dst[pos] = src1[pos] & src2[pos]
	}
}

// Or sets dst[pos] := src1[pos] | src2[pos] for every position.
// It panics if the three slices do not have the same length.
func Or(dst, src1, src2 []byte) {
	nByte := len(dst)
	if len(src1) != nByte || len(src2) != nByte {
		panic("Or() requires len(src1) == len(src2) == len(dst).")
	}
	pos := 0
	if wDst, wSrc1, wSrc2 := words3(dst, src1, src2); wDst != nil {
		for i := range wDst {
			wDst[i] = wSrc1[i] | wSrc2[i]
		}
		pos = len(wDst) << Log2BytesPerWord
	}
	for ; pos != nByte; pos++ {
		dst[pos] = src1[pos] | src2[pos]
	}
}

// Not sets dst[pos] := ^src[pos] for every position.
// It panics if len(dst) != len(src).
func Not(dst, src []byte) {
	nByte := len(dst)
	if len(src) != nByte {
		panic("Not() requires len(src) == len(dst).")
	}
	pos := 0
	if wDst, wSrc := words2(dst, src); wDst != nil {
		for i := range wDst {
			wDst[i] = ^wSrc[i]
		}
		pos = len(wDst) << Log2BytesPerWord
	}
	for ; pos != nByte; pos++ {
		dst[pos] = ^src[pos]
	}
}

// NotMasked complements the first nBit bits of src into dst, treating
// bit 0 as the low bit of src[0], and zeroes the bits of the last byte
// at positions >= nBit.
// It panics unless len(dst) == len(src) == (nBit + 7) / 8.
func NotMasked(dst, src []byte, nBit int) {
	if nBit < 0 || len(dst) != NBytes(nBit) {
		panic("NotMasked() requires len(dst) == (nBit + 7) / 8.")
	}
	Not(dst, src)
	if rem := uint(nBit) & 7; rem != 0 {
		dst[len(dst)-1] &= byte(1)<<rem - 1
	}
}
