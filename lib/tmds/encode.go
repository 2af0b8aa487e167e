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

// Candidates is the set of legal codewords for one pixel value: either a
// single codeword, or a direct (I=0) and an inverted (I=1) codeword of
// opposite bias.
//
// A running disparity accumulator, outside this package, chooses which one
// to transmit.
type Candidates struct {
	cws [2]Codeword
	n   uint8
}

// NewCandidates returns the Candidates holding cws, in that order.
//
// It returns ErrBadArgument unless there are one or two distinct, valid
// codewords.
func NewCandidates(cws ...Codeword) (Candidates, error) {
	if (len(cws) < 1) || (len(cws) > 2) {
		return Candidates{}, ErrBadArgument
	}
	ret := Candidates{n: uint8(len(cws))}
	for i, cw := range cws {
		if !cw.Valid() {
			return Candidates{}, ErrBadArgument
		}
		ret.cws[i] = cw
	}
	if (ret.n == 2) && (ret.cws[0] == ret.cws[1]) {
		return Candidates{}, ErrBadArgument
	}
	return ret, nil
}

// Len returns the number of codewords, 1 or 2 (0 for the zero value).
func (c Candidates) Len() int { return int(c.n) }

// At returns the i'th codeword. The direct codeword, if any, comes first.
func (c Candidates) At(i int) Codeword {
	if (i < 0) || (i >= int(c.n)) {
		panic("tmds: candidate index out of range")
	}
	return c.cws[i]
}

// Codewords returns a copy of the codewords, direct first.
func (c Candidates) Codewords() []Codeword {
	return append([]Codeword(nil), c.cws[:c.n]...)
}

// Contains returns whether cw is one of the codewords.
func (c Candidates) Contains(cw Codeword) bool {
	for _, x := range c.cws[:c.n] {
		if x == cw {
			return true
		}
	}
	return false
}

// Direct returns the codeword whose I bit is clear.
func (c Candidates) Direct() (Codeword, bool) {
	for _, x := range c.cws[:c.n] {
		if !x.IsInverted() {
			return x, true
		}
	}
	return 0, false
}

// Inverted returns the codeword whose I bit is set.
func (c Candidates) Inverted() (Codeword, bool) {
	for _, x := range c.cws[:c.n] {
		if x.IsInverted() {
			return x, true
		}
	}
	return 0, false
}

// Positive returns the codeword with the larger bias. For a single codeword
// it is that codeword.
func (c Candidates) Positive() Codeword {
	if c.n == 0 {
		panic("tmds: empty candidates")
	} else if (c.n == 2) && (c.cws[1].Vector().Bias() > c.cws[0].Vector().Bias()) {
		return c.cws[1]
	}
	return c.cws[0]
}

// Negative returns the codeword with the smaller bias. For a single codeword
// it is that codeword.
func (c Candidates) Negative() Codeword {
	if c.n == 0 {
		panic("tmds: empty candidates")
	} else if (c.n == 2) && (c.cws[1].Vector().Bias() > c.cws[0].Vector().Bias()) {
		return c.cws[0]
	}
	return c.cws[c.n-1]
}

// chooseOp picks XNOR for bytes with more ones than zeros, or with exactly
// four ones and bit 0 clear.
func chooseOp(d bitvec.Vector) Op {
	ones := d.Ones()
	if (ones > 4) || ((ones == 4) && (d.Bit(0) == 0)) {
		return OpXNOR
	}
	return OpXOR
}

// TransitionMinimize runs the first encoding stage on d. It returns the 8-bit
// base word, where base[0] = d[0] and base[k] = op(base[k-1], d[k]), and the
// operator used.
func TransitionMinimize(d byte) (base bitvec.Vector, op Op) {
	dv := bitvec.MustFromInt(uint64(d), 8)
	op = chooseOp(dv)

	q := [8]uint8{}
	q[0] = dv.Bit(0)
	for k := 1; k < 8; k++ {
		q[k] = op.apply(q[k-1], dv.Bit(k))
	}
	base = bitvec.MustFromBits(q[:]...)

	if t := base.Transitions(); (t > MaxDataTransitions) || (t != base.Invert().Transitions()) {
		panic("tmds: stage 1 produced a base word with too many transitions")
	}
	return base, op
}

var (
	bitZero = bitvec.MustFromBits(0)
	bitOne  = bitvec.MustFromBits(1)
)

// Encode returns the legal codewords for pixel value d.
//
// If the base word has non-zero bias there are two: base‖X‖0 and
// invert(base)‖X‖1, in that order. Otherwise there is one, and it follows the
// zero-disparity rule of the DVI encoder: base‖X‖0 after XOR, invert(base)‖X‖1
// after XNOR.
func Encode(d byte) Candidates {
	base, op := TransitionMinimize(d)
	x := bitvec.MustFromBits(uint8(op))

	direct := mustCodewordFromVector(base.Concat(x).Concat(bitZero))
	inverted := mustCodewordFromVector(base.Invert().Concat(x).Concat(bitOne))

	switch {
	case base.Bias() != 0:
		return Candidates{cws: [2]Codeword{direct, inverted}, n: 2}
	case op == OpXNOR:
		return Candidates{cws: [2]Codeword{inverted}, n: 1}
	}
	return Candidates{cws: [2]Codeword{direct}, n: 1}
}
