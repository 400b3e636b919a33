// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"
	"strings"

	"github.com/grailbio/bitarray/errors"
)

// String returns the significant bits as a string of '0' and '1',
// highest index first, so that a 3-bit BitSet with only bit 0 set
// prints as "001". An empty BitSet prints as "".
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := b.n - 1; i >= 0; i-- {
		if b.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse is the inverse of String: it returns a BitSet of len(s) bits,
// where the last character of s is bit 0. It returns an error of kind
// errors.Invalid if s contains anything but '0' and '1'.
func Parse(s string) (*BitSet, error) {
	n := len(s)
	b := New(n, n)
	for pos := 0; pos < n; pos++ {
		switch s[pos] {
		case '0':
		case '1':
			b.Set(n-1-pos, true)
		default:
			return nil, errors.E(errors.Invalid, fmt.Sprintf("bitset: bad character %q at offset %d in pattern %q", s[pos], pos, s))
		}
	}
	return b, nil
}
