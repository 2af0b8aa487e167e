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
	"sync"
)

// Rules are optional arguments to NewRegistry. The zero value is valid and
// means to use the standard TMDS encoder and control table.
type Rules struct {
	// If nil, the default is Encode.
	Encode func(d byte) Candidates

	// If nil, the default is ControlTable().
	Control *[NumControlPairs]Codeword
}

// Registry is the complete, immutable mapping between symbols and codewords.
//
// A Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	dataForward [256]Candidates
	ctrlForward [NumControlPairs]Codeword

	// reverse is indexed by codeword. Its zero value, Forbidden, marks
	// codewords that no symbol claimed.
	reverse [NumCodewords]Symbol

	numData int
}

// NewRegistry enumerates all 256 pixel values and 4 control pairs and builds
// both directions of the mapping.
//
// It returns an error wrapping ErrCollision if any codeword is claimed twice,
// ErrWeakControl if a control codeword has fewer than MinControlTransitions
// transitions, and ErrBadArgument if rules produce an empty candidate set or
// an out of range codeword. On error, no Registry is returned.
//
// rules may be nil, which means to use the standard rules.
func NewRegistry(rules *Rules) (*Registry, error) {
	encode, control := Encode, &controlCodewords
	if rules != nil {
		if rules.Encode != nil {
			encode = rules.Encode
		}
		if rules.Control != nil {
			control = rules.Control
		}
	}

	r := &Registry{}
	for d := range 256 {
		c := encode(byte(d))
		if c.Len() == 0 {
			return nil, fmt.Errorf("%w: no codeword for 0x%02X", ErrBadArgument, d)
		}
		for _, cw := range c.Codewords() {
			if err := r.claim(cw, Data(byte(d))); err != nil {
				return nil, err
			}
		}
		r.dataForward[d] = c
	}

	for p, cw := range control {
		if !cw.Valid() {
			return nil, fmt.Errorf("%w: control codeword 0x%X", ErrBadArgument, uint16(cw))
		} else if t := cw.Vector().Transitions(); t < MinControlTransitions {
			return nil, fmt.Errorf("%w: %v has %d", ErrWeakControl, cw, t)
		}
		if err := r.claim(cw, Control(ControlPair(p))); err != nil {
			return nil, err
		}
		r.ctrlForward[p] = cw
	}

	return r, nil
}

func (r *Registry) claim(cw Codeword, s Symbol) error {
	if !cw.Valid() {
		return fmt.Errorf("%w: codeword 0x%X for %v", ErrBadArgument, uint16(cw), s)
	} else if prev := r.reverse[cw]; prev.Kind() != KindForbidden {
		return fmt.Errorf("%w: %v is both %v and %v", ErrCollision, cw, prev, s)
	}
	r.reverse[cw] = s
	if s.Kind() == KindData {
		r.numData++
	}
	return nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(nil)
	if err != nil {
		panic("tmds: the standard rules do not build: " + err.Error())
	}
	return r
})

// Default returns the Registry for the standard TMDS rules. It is built on
// first use and shared thereafter.
func Default() *Registry {
	return defaultRegistry()
}

// Encode returns the legal codewords for pixel value d, direct first.
func (r *Registry) Encode(d byte) Candidates {
	return r.dataForward[d]
}

// Control returns the codeword for control pair p. It panics if p is out of
// range.
func (r *Registry) Control(p ControlPair) Codeword {
	if p >= NumControlPairs {
		panic("tmds: control pair out of range")
	}
	return r.ctrlForward[p]
}

// Classify returns the meaning of cw. It panics if cw is not Valid.
func (r *Registry) Classify(cw Codeword) Symbol {
	cw.mustBeValid()
	return r.reverse[cw]
}

// DataReverse returns the pixel value that cw encodes, if any.
func (r *Registry) DataReverse(cw Codeword) (byte, bool) {
	return r.Classify(cw).Byte()
}

// ControlReverse returns the control pair that cw encodes, if any.
func (r *Registry) ControlReverse(cw Codeword) (ControlPair, bool) {
	return r.Classify(cw).ControlPair()
}

// NumData returns the number of distinct data codewords.
func (r *Registry) NumData() int { return r.numData }

func (r *Registry) codewordsOf(keep func(Kind) bool) []Codeword {
	ret := []Codeword(nil)
	for i := range NumCodewords {
		if keep(r.reverse[i].Kind()) {
			ret = append(ret, Codeword(i))
		}
	}
	return ret
}

// DataCodewords returns every data codeword in ascending order.
func (r *Registry) DataCodewords() []Codeword {
	return r.codewordsOf(func(k Kind) bool { return k == KindData })
}

// ControlCodewords returns every control codeword in ascending order.
func (r *Registry) ControlCodewords() []Codeword {
	return r.codewordsOf(func(k Kind) bool { return k == KindControl })
}

// ValidCodewords returns every data or control codeword in ascending order.
func (r *Registry) ValidCodewords() []Codeword {
	return r.codewordsOf(func(k Kind) bool { return k != KindForbidden })
}

// ForbiddenCodewords returns every forbidden codeword in ascending order.
func (r *Registry) ForbiddenCodewords() []Codeword {
	return r.codewordsOf(func(k Kind) bool { return k == KindForbidden })
}
