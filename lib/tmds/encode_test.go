// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package tmds

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLiteralExamples(t *testing.T) {
	testCases := []struct {
		d    byte
		op   Op
		base string
		want []string
	}{
		// Four ones: XOR, balanced base word.
		{0x10, OpXOR, "00001111", []string{"0000111110"}},
		// Seven ones: XNOR, balanced base word, sent inverted.
		{0xEF, OpXNOR, "11110000", []string{"0000111101"}},
		{0x00, OpXOR, "00000000", []string{"0000000010", "1111111111"}},
		{0xFF, OpXNOR, "11111111", []string{"1111111100", "0000000001"}},
		{0x01, OpXOR, "11111111", []string{"1111111110", "0000000011"}},
		{0x80, OpXOR, "00000001", []string{"0000000110", "1111111011"}},
		// Four ones with bit 0 set: XOR.
		{0x55, OpXOR, "11001100", []string{"1100110010"}},
		// Four ones with bit 0 clear: XNOR.
		{0xAA, OpXNOR, "00110011", []string{"1100110001"}},
	}

	for _, tc := range testCases {
		base, op := TransitionMinimize(tc.d)
		assert.Equal(t, tc.op, op, "d=0x%02X", tc.d)
		assert.Equal(t, tc.base, base.String(), "d=0x%02X", tc.d)

		got := []string(nil)
		for _, cw := range Encode(tc.d).Codewords() {
			got = append(got, cw.String())
		}
		assert.Equal(t, tc.want, got, "d=0x%02X", tc.d)
	}
}

func TestEncodeAllBytes(t *testing.T) {
	for d := range 256 {
		c := Encode(byte(d))
		require.Contains(t, []int{1, 2}, c.Len(), "d=0x%02X", d)

		base, op := TransitionMinimize(byte(d))
		for _, cw := range c.Codewords() {
			require.True(t, cw.Valid())
			assert.LessOrEqual(t, cw.PayloadStats().Transitions, MaxDataTransitions, "cw=%v", cw)
			assert.Equal(t, op, cw.Op(), "cw=%v", cw)
		}

		if c.Len() == 1 {
			assert.Zero(t, base.Bias(), "d=0x%02X", d)
			continue
		}

		direct, inverted := c.At(0), c.At(1)
		assert.False(t, direct.IsInverted(), "d=0x%02X", d)
		assert.True(t, inverted.IsInverted(), "d=0x%02X", d)
		assert.Equal(t, direct.Payload()^0xFF, inverted.Payload(), "d=0x%02X", d)
		assert.Equal(t, direct.Complement(), inverted, "d=0x%02X", d)
		assert.Zero(t, direct.PayloadStats().Bias+inverted.PayloadStats().Bias, "d=0x%02X", d)
		assert.NotZero(t, base.Bias(), "d=0x%02X", d)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	condition := func(d byte) bool {
		return Encode(d) == Encode(d)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestCandidatesPolarity(t *testing.T) {
	c := Encode(0x00)
	direct, ok := c.Direct()
	require.True(t, ok)
	inverted, ok := c.Inverted()
	require.True(t, ok)
	assert.Equal(t, "0000000010", direct.String())
	assert.Equal(t, "1111111111", inverted.String())

	assert.Equal(t, inverted, c.Positive())
	assert.Equal(t, direct, c.Negative())
	assert.True(t, c.Contains(direct))
	assert.False(t, c.Contains(0x3FE))

	single := Encode(0xEF)
	_, ok = single.Direct()
	assert.False(t, ok)
	assert.Equal(t, single.Positive(), single.Negative())
	assert.Panics(t, func() { single.At(1) })
	assert.Panics(t, func() { Candidates{}.Positive() })
}

func TestNewCandidates(t *testing.T) {
	c, err := NewCandidates(0x100, 0x3FF)
	require.NoError(t, err)
	assert.Equal(t, Encode(0x00), c)

	for _, bad := range [][]Codeword{nil, {1, 2, 3}, {0x400}, {5, 5}} {
		_, err := NewCandidates(bad...)
		assert.ErrorIs(t, err, ErrBadArgument, "cws=%v", bad)
	}
}

func TestCodewordFields(t *testing.T) {
	cw := MustCodeword(0x2F0)
	assert.Equal(t, uint8(0xF0), cw.Payload())
	assert.Equal(t, uint8(0), cw.X())
	assert.Equal(t, uint8(1), cw.I())
	assert.Equal(t, OpXNOR, cw.Op())
	assert.Equal(t, "XNOR", cw.Op().String())
	assert.Equal(t, "0000111101", cw.String())
	assert.Equal(t, Stats{Ones: 5, Zeros: 5, Transitions: 3, Bias: 0}, cw.Stats())
	assert.Equal(t, Stats{Ones: 4, Zeros: 4, Transitions: 1, Bias: 0}, cw.PayloadStats())

	_, err := NewCodeword(NumCodewords)
	assert.ErrorIs(t, err, ErrBadArgument)
	assert.Panics(t, func() { MustCodeword(0xFFFF) })
	assert.Equal(t, "Codeword(invalid)", Codeword(0x400).String())
}

func TestCodewordRotate(t *testing.T) {
	cw := ControlCodeword(NewControlPair(0, 0))
	assert.Equal(t, "0010101011", cw.String())
	assert.Equal(t, "0101010110", cw.Rotate(1).String())
	assert.Equal(t, "1001010101", cw.Rotate(9).String())
	assert.Equal(t, cw, cw.Rotate(CodewordWidth))
}

func TestSymbol(t *testing.T) {
	s := Data(0x10)
	b, ok := s.Byte()
	assert.True(t, ok)
	assert.Equal(t, byte(0x10), b)
	_, ok = s.ControlPair()
	assert.False(t, ok)
	assert.Equal(t, "Data(0x10)", s.String())

	p := NewControlPair(1, 0)
	s = Control(p)
	got, ok := s.ControlPair()
	assert.True(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, uint8(1), got.C0())
	assert.Equal(t, uint8(0), got.C1())
	assert.Equal(t, "Control(c0=1, c1=0)", s.String())

	assert.Equal(t, KindForbidden, Forbidden().Kind())
	assert.Equal(t, Symbol{}, Forbidden())
	assert.Equal(t, "Forbidden", Forbidden().String())

	assert.Panics(t, func() { NewControlPair(2, 0) })
	assert.Panics(t, func() { Control(4) })
}
