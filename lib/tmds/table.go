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

// Stats are the counts shown in TMDS token tables.
type Stats struct {
	Ones        int
	Zeros       int
	Transitions int
	Bias        int
}

func statsOf(v bitvec.Vector) Stats {
	return Stats{
		Ones:        v.Ones(),
		Zeros:       v.Zeros(),
		Transitions: v.Transitions(),
		Bias:        v.Bias(),
	}
}

// Stats returns the counts over all 10 bits of c.
func (c Codeword) Stats() Stats { return statsOf(c.Vector()) }

// PayloadStats returns the counts over bits 0 to 7 of c.
func (c Codeword) PayloadStats() Stats { return statsOf(c.Vector().Slice(0, 8)) }

// DataEntry is one pixel value's row in a Table.
type DataEntry struct {
	Candidates Candidates
	Positive   Codeword
	Negative   Codeword
}

// Table is a copy of a Registry laid out for lookup table generators.
type Table struct {
	// Data is indexed by pixel value.
	Data [256]DataEntry
	// Codewords is indexed by codeword.
	Codewords [NumCodewords]Symbol
}

// Table returns a copy of r's mapping in both directions.
func (r *Registry) Table() *Table {
	t := &Table{Codewords: r.reverse}
	for d, c := range r.dataForward {
		t.Data[d] = DataEntry{
			Candidates: c,
			Positive:   c.Positive(),
			Negative:   c.Negative(),
		}
	}
	return t
}
