// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package tmds

import (
	"github.com/mithro/tmds-encoding/lib/bitvec"
)

// ControlWindowWidth is the number of bits a receiver needs to see to find
// the symbol boundary during a control period: two whole codewords.
const ControlWindowWidth = 2 * CodewordWidth

// Phase is where the symbol boundary lies in a window of received bits.
type Phase struct {
	Pair ControlPair
	// Offset is how many bits the window starts after a symbol boundary.
	Offset int
}

// ControlWindow returns the 20 bits a receiver sees when p is sent twice in a
// row and its window starts offset bits into the first codeword. Bit 0 of the
// result is the first bit received.
func ControlWindow(p ControlPair, offset int) uint32 {
	if (offset < 0) || (offset >= CodewordWidth) {
		panic("tmds: control window offset out of range")
	}
	v := ControlCodeword(p).Vector()
	return uint32(v.Concat(v).RotateN(bitvec.Left, offset).Int())
}

var controlWindows = func() (ret [NumControlPairs][CodewordWidth]uint32) {
	for _, p := range ControlPairs() {
		for k := range CodewordWidth {
			ret[p][k] = ControlWindow(p, k)
		}
	}
	return ret
}()

// FindControlPhase matches a 20-bit window against every control pair at
// every offset. Every such window is distinct, so a match is unambiguous.
// Bits of window above bit 19 must be zero.
func FindControlPhase(window uint32) (Phase, bool) {
	if (window >> ControlWindowWidth) != 0 {
		return Phase{}, false
	}
	for p, windows := range controlWindows {
		for k, w := range windows {
			if w == window {
				return Phase{Pair: ControlPair(p), Offset: k}, true
			}
		}
	}
	return Phase{}, false
}
