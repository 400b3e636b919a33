// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package unsafe holds the few places where bitarray reinterprets
// memory.
package unsafe

import (
	"unsafe"
)

// BytesPerWord is the size of the words returned by BytesToWords.
const BytesPerWord = 8

// BytesToWords returns a []uint64 sharing memory with the leading
// len(src)/8 whole words of src. It returns nil when src holds less
// than one word or when &src[0] is not 8-byte aligned; callers then
// fall back to byte-at-a-time processing.
//
// Byte order within each word is the host's, so the view is only
// suitable for position-independent operations like AND, OR, NOT and
// population count.
func BytesToWords(src []byte) []uint64 {
	if !Aligned(src) {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&src[0])), len(src)/BytesPerWord)
}

// Aligned tells whether src holds at least one word and starts on a
// word boundary, i.e. whether BytesToWords returns a word view of it.
func Aligned(src []byte) bool {
	return len(src) >= BytesPerWord && uintptr(unsafe.Pointer(&src[0]))&(BytesPerWord-1) == 0
}
