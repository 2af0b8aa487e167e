// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package tmds

import (
	"fmt"
)

// Kind is a Symbol's variant. The numerical values match the tags used by
// downstream lookup tables.
type Kind uint8

const (
	KindForbidden = Kind(0)
	KindData      = Kind(1)
	KindControl   = Kind(2)
)

func (k Kind) String() string {
	switch k {
	case KindForbidden:
		return "forbidden"
	case KindData:
		return "data"
	case KindControl:
		return "control"
	}
	return "Kind(invalid)"
}

// ControlPair is the pair of control bits (c0, c1), packed as c0 | c1<<1.
type ControlPair uint8

// NumControlPairs is the number of distinct ControlPair values.
const NumControlPairs = 4

// NewControlPair returns the ControlPair for (c0, c1). It panics if either
// argument is not 0 or 1.
func NewControlPair(c0 uint8, c1 uint8) ControlPair {
	if (c0 | c1) > 1 {
		panic("tmds: control bit is not 0 or 1")
	}
	return ControlPair(c0 | (c1 << 1))
}

// ControlPairs returns every ControlPair, in packed order.
func ControlPairs() [NumControlPairs]ControlPair {
	return [NumControlPairs]ControlPair{0, 1, 2, 3}
}

func (p ControlPair) C0() uint8 { return uint8(p) & 1 }
func (p ControlPair) C1() uint8 { return uint8(p>>1) & 1 }

func (p ControlPair) String() string {
	return fmt.Sprintf("(c0=%d, c1=%d)", p.C0(), p.C1())
}

// Symbol is what a codeword means: exactly one of a data byte, a control
// pair or nothing (forbidden).
//
// The zero value is the forbidden Symbol.
type Symbol struct {
	kind    Kind
	payload uint8
}

// Data returns the Symbol for pixel value b.
func Data(b byte) Symbol { return Symbol{kind: KindData, payload: b} }

// Control returns the Symbol for control pair p. It panics if p is out of
// range.
func Control(p ControlPair) Symbol {
	if p >= NumControlPairs {
		panic("tmds: control pair out of range")
	}
	return Symbol{kind: KindControl, payload: uint8(p)}
}

// Forbidden returns the Symbol of a codeword with no meaning.
func Forbidden() Symbol { return Symbol{} }

func (s Symbol) Kind() Kind { return s.kind }

// Byte returns the pixel value of a data Symbol.
func (s Symbol) Byte() (b byte, ok bool) {
	if s.kind != KindData {
		return 0, false
	}
	return s.payload, true
}

// ControlPair returns the control bits of a control Symbol.
func (s Symbol) ControlPair() (p ControlPair, ok bool) {
	if s.kind != KindControl {
		return 0, false
	}
	return ControlPair(s.payload), true
}

func (s Symbol) String() string {
	switch s.kind {
	case KindData:
		return fmt.Sprintf("Data(0x%02X)", s.payload)
	case KindControl:
		return "Control" + ControlPair(s.payload).String()
	}
	return "Forbidden"
}
