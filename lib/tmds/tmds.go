// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package tmds implements the TMDS (Transition Minimized Differential
// Signaling) 8b/10b token code used by DVI and HDMI links.
//
// Every 8-bit pixel value maps to one or two 10-bit codewords and every pair
// of control bits (c0, c1) maps to one fixed codeword. The remaining
// codewords are forbidden. A Registry holds both directions of that mapping
// for the whole 1024-codeword space and the analysis functions measure how
// far forbidden and rotated control codewords are from the valid ones.
//
// Codeword bit 0 is transmitted first. Bits 0 to 7 carry the payload, bit 8
// ("X") is 1 if the payload was built with XOR and 0 if with XNOR, and bit 9
// ("I") is 1 if the payload was inverted:
//
//	01234567XI
//	0000111110  is the only codeword for 0x10
//
// TMDS is specified in section 3.2.2 ("Encode Algorithm") of the DVI 1.0
// specification.
package tmds

import (
	"errors"

	"github.com/mithro/tmds-encoding/lib/bitvec"
)

var (
	ErrBadArgument  = errors.New("tmds: bad argument")
	ErrCollision    = errors.New("tmds: codeword assigned to more than one symbol")
	ErrPartition    = errors.New("tmds: codeword space is not partitioned")
	ErrWeakControl  = errors.New("tmds: control codeword has too few transitions")
	errNotForbidden = errors.New("tmds: codeword is not forbidden")
)

const (
	// CodewordWidth is the number of bits in a Codeword.
	CodewordWidth = 10
	// NumCodewords is the size of the codeword space.
	NumCodewords = 1 << CodewordWidth

	// MaxDataTransitions bounds the transitions in a data codeword's payload.
	MaxDataTransitions = 4
	// MinControlTransitions bounds the transitions in a control codeword.
	MinControlTransitions = 7

	payloadMask = 0xFF
	xBit        = 8
	iBit        = 9
)

// Op is the stage 1 operator. Its value is the codeword's X bit.
type Op uint8

const (
	OpXNOR = Op(0)
	OpXOR  = Op(1)
)

func (o Op) String() string {
	switch o {
	case OpXNOR:
		return "XNOR"
	case OpXOR:
		return "XOR"
	}
	return "Op(invalid)"
}

func (o Op) apply(a uint8, b uint8) uint8 {
	if o == OpXNOR {
		return bitvec.Xnor(a, b)
	}
	return bitvec.Xor(a, b)
}

// Codeword is a 10-bit TMDS symbol, in [0, NumCodewords). Its integer value
// holds the bit transmitted first in the least significant position.
type Codeword uint16

// NewCodeword returns x as a Codeword, or ErrBadArgument if x is out of range.
func NewCodeword(x uint16) (Codeword, error) {
	if x >= NumCodewords {
		return 0, ErrBadArgument
	}
	return Codeword(x), nil
}

// MustCodeword is like NewCodeword but panics if x is out of range.
func MustCodeword(x uint16) Codeword {
	c, err := NewCodeword(x)
	if err != nil {
		panic("tmds: codeword out of range")
	}
	return c
}

// CodewordFromVector converts a 10-bit Vector to a Codeword.
func CodewordFromVector(v bitvec.Vector) (Codeword, error) {
	if v.Len() != CodewordWidth {
		return 0, ErrBadArgument
	}
	return Codeword(v.Int()), nil
}

func mustCodewordFromVector(v bitvec.Vector) Codeword {
	c, err := CodewordFromVector(v)
	if err != nil {
		panic("tmds: codeword vector has the wrong width")
	}
	return c
}

// Valid returns whether c is inside the codeword space.
func (c Codeword) Valid() bool { return c < NumCodewords }

func (c Codeword) mustBeValid() {
	if c >= NumCodewords {
		panic("tmds: codeword out of range")
	}
}

// Vector returns c as a 10-bit Vector. It panics if c is not Valid.
func (c Codeword) Vector() bitvec.Vector {
	c.mustBeValid()
	return bitvec.MustFromInt(uint64(c), CodewordWidth)
}

// Payload returns bits 0 to 7 of c.
func (c Codeword) Payload() uint8 { return uint8(c & payloadMask) }

// X returns bit 8 of c.
func (c Codeword) X() uint8 { return uint8(c>>xBit) & 1 }

// I returns bit 9 of c.
func (c Codeword) I() uint8 { return uint8(c>>iBit) & 1 }

// Op returns the stage 1 operator recorded in c's X bit.
func (c Codeword) Op() Op { return Op(c.X()) }

// IsInverted returns whether c's I bit is set.
func (c Codeword) IsInverted() bool { return c.I() != 0 }

// Complement returns the other polarity of c: the payload inverted, the X bit
// unchanged and the I bit flipped.
func (c Codeword) Complement() Codeword {
	c.mustBeValid()
	return c ^ (payloadMask | (1 << iBit))
}

// Distance returns the Hamming distance between c and d.
func (c Codeword) Distance(d Codeword) int {
	return bitvec.Hamming(c.Vector(), d.Vector())
}

// Rotate returns c rotated by k positions towards bit 0, as seen by a
// receiver whose symbol boundary is k bits late.
func (c Codeword) Rotate(k int) Codeword {
	return Codeword(c.Vector().RotateN(bitvec.Left, k).Int())
}

// String returns c's bits, bit 0 first.
func (c Codeword) String() string {
	if !c.Valid() {
		return "Codeword(invalid)"
	}
	return c.Vector().String()
}
