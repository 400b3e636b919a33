// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	gunsafe "github.com/grailbio/bitarray/unsafe"
)

// BytesPerWord is the number of bytes processed per step of the word
// path. It is 8 regardless of the platform's native word size.
const BytesPerWord = gunsafe.BytesPerWord

// Log2BytesPerWord is log2(BytesPerWord).  This is relevant for manual
// bit-shifting when we know that's a safe way to divide and the compiler does
// not (e.g. dividend is of signed int type).
const Log2BytesPerWord = uint(3)

// NBytes returns the number of bytes needed to hold nBit bits, for any
// non-negative nBit up to math.MaxInt.
func NBytes(nBit int) int {
	return nBit>>3 + (nBit&7+7)>>3
}

// words2 returns word views of a and b when both are aligned. The
// views have equal length when len(a) == len(b).
func words2(a, b []byte) ([]uint64, []uint64) {
	wa := gunsafe.BytesToWords(a)
	if wa == nil {
		return nil, nil
	}
	wb := gunsafe.BytesToWords(b)
	if wb == nil {
		return nil, nil
	}
	return wa, wb
}

func words3(a, b, c []byte) ([]uint64, []uint64, []uint64) {
	wa, wb := words2(a, b)
	if wa == nil {
		return nil, nil, nil
	}
	wc := gunsafe.BytesToWords(c)
	if wc == nil {
		return nil, nil, nil
	}
	return wa, wb, wc
}
