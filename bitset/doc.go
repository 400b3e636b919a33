// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitset provides BitSet, a growable, densely packed bit array
// intended as the storage layer of Bloom filters. A filter maps each
// key to a handful of bit positions, calls Set to insert and Get to
// test membership, and merges or compares filters with Or and And.
//
// Bit i lives in byte i/8 at bit position i%8, counting from the least
// significant bit. A BitSet tracks two lengths: the number of bytes
// backing it and the number of significant bits (Size). Bits at or past
// Size are always zero, and reads past the backing bytes return false.
//
// A BitSet is not safe for concurrent mutation. Concurrent reads,
// including use as an operand of Not, And and Or, are safe as long as
// nothing mutates the BitSet at the same time; the operators never
// modify their operands.
package bitset
