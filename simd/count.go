// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"math/bits"

	gunsafe "github.com/grailbio/bitarray/unsafe"
)

// Popcnt returns the number of set bits in the given []byte.
func Popcnt(src []byte) int {
	tot := 0
	pos := 0
	if w := gunsafe.BytesToWords(src); w != nil {
		for _, word := range w {
			tot += bits.OnesCount64(word)
		}
		pos = len(w) << Log2BytesPerWord
	}
	for _, b := range src[pos:] {
		tot += bits.OnesCount8(b)
	}
	return tot
}

// FirstUnequal8 scans arg1[startPos:] and arg2[startPos:] for the
// first mismatching byte, returning its index if one is found, and
// the common length if all bytes match. It panics if len(arg1) !=
// len(arg2) or startPos is out of range.
func FirstUnequal8(arg1, arg2 []byte, startPos int) int {
	endPos := len(arg1)
	if endPos != len(arg2) || startPos < 0 || startPos > endPos {
		panic("FirstUnequal8() requires len(arg1) == len(arg2) and 0 <= startPos <= len(arg1).")
	}
	pos := startPos
	if pos == 0 {
		if w1, w2 := words2(arg1, arg2); w1 != nil {
			for i, word := range w1 {
				if word != w2[i] {
					break
				}
				pos += BytesPerWord
			}
		}
	}
	for ; pos != endPos; pos++ {
		if arg1[pos] != arg2[pos] {
			return pos
		}
	}
	return endPos
}
