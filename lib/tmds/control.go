// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package tmds

// controlCodewords are sent during blanking. Each has at least 7 transitions,
// more than any data codeword, so that a receiver can tell control periods
// from data periods and find the symbol boundary.
var controlCodewords = [NumControlPairs]Codeword{
	//        bits 0..9     c0 c1
	0x354, // 0010101011     0  0
	0x0AB, // 1101010100     1  0
	0x154, // 0010101010     0  1
	0x2AB, // 1101010101     1  1
}

// ControlCodeword returns the fixed codeword for p. It panics if p is out of
// range.
func ControlCodeword(p ControlPair) Codeword {
	if p >= NumControlPairs {
		panic("tmds: control pair out of range")
	}
	return controlCodewords[p]
}

// ControlTable returns the four control codewords, indexed by ControlPair.
func ControlTable() [NumControlPairs]Codeword {
	return controlCodewords
}
