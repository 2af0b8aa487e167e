// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package bitvec implements fixed-width bit vectors and the bit-level
// operators used by serial line codes.
//
// A Vector is an ordered sequence of between 1 and 64 bits. Index 0 is the
// first bit transmitted on the wire and is also the least significant bit of
// the Vector's integer encoding, so that
//
//	MustFromInt(0x10, 8).String() == "00001000"
//
// Vectors are values. No operation modifies its receiver.
package bitvec

import (
	"errors"
	"math/bits"
	"strings"
)

var (
	ErrBadArgument = errors.New("bitvec: bad argument")
)

// MaxWidth is the widest Vector that can be represented.
const MaxWidth = 64

// Direction is a rotation direction.
type Direction uint8

const (
	// Left moves every bit one position towards index 0. The bit at index 0
	// wraps around to index N-1.
	Left = Direction(0)
	// Right moves every bit one position away from index 0. The bit at index
	// N-1 wraps around to index 0.
	Right = Direction(1)
)

// Vector is an immutable, fixed-width sequence of bits.
//
// The zero value is the empty (zero width) Vector.
type Vector struct {
	v uint64
	n uint8
}

func mask(n uint8) uint64 {
	if n >= MaxWidth {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// FromInt returns the n-bit Vector whose integer encoding is x.
//
// It returns ErrBadArgument if n is outside [1, 64] or if x does not fit in n
// bits. Values are never truncated.
func FromInt(x uint64, n int) (Vector, error) {
	if (n < 1) || (n > MaxWidth) {
		return Vector{}, ErrBadArgument
	} else if (x &^ mask(uint8(n))) != 0 {
		return Vector{}, ErrBadArgument
	}
	return Vector{v: x, n: uint8(n)}, nil
}

// MustFromInt is like FromInt but panics if x or n is out of range.
func MustFromInt(x uint64, n int) Vector {
	v, err := FromInt(x, n)
	if err != nil {
		panic("bitvec: MustFromInt: value does not fit in width")
	}
	return v
}

// FromBits returns the Vector whose index i bit is b[i].
//
// It returns ErrBadArgument if b is empty, longer than 64 or contains an
// element other than 0 or 1.
func FromBits(b []uint8) (Vector, error) {
	if (len(b) == 0) || (len(b) > MaxWidth) {
		return Vector{}, ErrBadArgument
	}
	x := uint64(0)
	for i, bit := range b {
		if bit > 1 {
			return Vector{}, ErrBadArgument
		}
		x |= uint64(bit) << i
	}
	return Vector{v: x, n: uint8(len(b))}, nil
}

// MustFromBits is like FromBits but panics on malformed input.
func MustFromBits(b ...uint8) Vector {
	v, err := FromBits(b)
	if err != nil {
		panic("bitvec: MustFromBits: malformed bit sequence")
	}
	return v
}

// Int returns the integer encoding of v.
func (v Vector) Int() uint64 { return v.v }

// Len returns the width of v.
func (v Vector) Len() int { return int(v.n) }

// Bit returns the bit at index i. It panics if i is out of range.
func (v Vector) Bit(i int) uint8 {
	if (i < 0) || (i >= int(v.n)) {
		panic("bitvec: index out of range")
	}
	return uint8(v.v>>i) & 1
}

// Bits returns v's bits, index 0 first.
func (v Vector) Bits() []uint8 {
	ret := make([]uint8, v.n)
	for i := range ret {
		ret[i] = uint8(v.v>>i) & 1
	}
	return ret
}

// String returns v's bits as '0' and '1' characters, index 0 first.
func (v Vector) String() string {
	sb := strings.Builder{}
	sb.Grow(int(v.n))
	for i := range int(v.n) {
		sb.WriteByte('0' + byte(v.v>>i)&1)
	}
	return sb.String()
}

// Rotate returns v rotated by one position in the given direction.
func (v Vector) Rotate(dir Direction) Vector {
	if v.n == 0 {
		return v
	}
	m := mask(v.n)
	switch dir {
	case Left:
		return Vector{v: (v.v >> 1) | ((v.v & 1) << (v.n - 1)), n: v.n}
	case Right:
		return Vector{v: ((v.v << 1) & m) | (v.v >> (v.n - 1)), n: v.n}
	}
	panic("bitvec: bad rotation direction")
}

// RotateN returns v rotated by k positions in the given direction. k may be
// any non-negative number; rotating by the width is the identity.
func (v Vector) RotateN(dir Direction, k int) Vector {
	if k < 0 {
		panic("bitvec: negative rotation")
	} else if v.n == 0 {
		return v
	}
	for range k % int(v.n) {
		v = v.Rotate(dir)
	}
	return v
}

// Invert returns the complement of v.
func (v Vector) Invert() Vector {
	return Vector{v: v.v ^ mask(v.n), n: v.n}
}

// Concat returns the bits of v followed by the bits of w. It panics if the
// result would be wider than 64 bits.
func (v Vector) Concat(w Vector) Vector {
	if int(v.n)+int(w.n) > MaxWidth {
		panic("bitvec: Concat result is too wide")
	}
	return Vector{v: v.v | (w.v << v.n), n: v.n + w.n}
}

// Slice returns the bits of v with indexes in [lo, hi).
func (v Vector) Slice(lo int, hi int) Vector {
	if (lo < 0) || (hi > int(v.n)) || (lo > hi) {
		panic("bitvec: slice bounds out of range")
	}
	n := uint8(hi - lo)
	return Vector{v: (v.v >> lo) & mask(n), n: n}
}

// Ones returns the number of set bits in v.
func (v Vector) Ones() int { return bits.OnesCount64(v.v) }

// Zeros returns the number of cleared bits in v.
func (v Vector) Zeros() int { return int(v.n) - v.Ones() }

// Bias returns v's disparity: the number of ones minus the number of zeros.
func (v Vector) Bias() int { return v.Ones() - v.Zeros() }

// Transitions returns the number of adjacent bit pairs that differ.
func (v Vector) Transitions() int {
	if v.n < 2 {
		return 0
	}
	return bits.OnesCount64((v.v ^ (v.v >> 1)) & mask(v.n-1))
}

// Hamming returns the number of positions at which a and b differ.
//
// It panics if a and b have different widths: the distance between them is
// undefined.
func Hamming(a Vector, b Vector) int {
	if a.n != b.n {
		panic("bitvec: Hamming of vectors with different widths")
	}
	return bits.OnesCount64(a.v ^ b.v)
}

// Xor returns a XOR b for single bits. It panics if either is not 0 or 1.
func Xor(a uint8, b uint8) uint8 {
	if (a | b) > 1 {
		panic("bitvec: Xor of a non-bit value")
	}
	return a ^ b
}

// Xnor returns a XNOR b for single bits. It panics if either is not 0 or 1.
func Xnor(a uint8, b uint8) uint8 {
	return Xor(a, b) ^ 1
}
