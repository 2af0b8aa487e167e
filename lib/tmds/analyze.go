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
	"slices"
	"sync"
)

// Partition is the codeword space split by Symbol kind. Each slice is in
// ascending order.
type Partition struct {
	Data      []Codeword
	Control   []Codeword
	Forbidden []Codeword
}

// Partition classifies every codeword in the space.
func (r *Registry) Partition() Partition {
	p := Partition{}
	for i := range NumCodewords {
		cw := Codeword(i)
		switch r.Classify(cw).Kind() {
		case KindData:
			p.Data = append(p.Data, cw)
		case KindControl:
			p.Control = append(p.Control, cw)
		default:
			p.Forbidden = append(p.Forbidden, cw)
		}
	}
	return p
}

// Check returns an error wrapping ErrPartition unless every codeword appears
// in exactly one of p's slices.
func (p Partition) Check() error {
	seen := [NumCodewords]uint8{}
	for _, s := range [3][]Codeword{p.Data, p.Control, p.Forbidden} {
		for _, cw := range s {
			if !cw.Valid() {
				return fmt.Errorf("%w: codeword 0x%X is out of range", ErrPartition, uint16(cw))
			}
			seen[cw]++
		}
	}
	for i, n := range seen {
		if n != 1 {
			return fmt.Errorf("%w: %v appears %d times", ErrPartition, Codeword(i), n)
		}
	}
	if total := len(p.Data) + len(p.Control) + len(p.Forbidden); total != NumCodewords {
		return fmt.Errorf("%w: %d codewords", ErrPartition, total)
	}
	return nil
}

// Nearest is the result of a nearest-neighbor search.
type Nearest struct {
	// Distance is the minimum Hamming distance found, or -1 if the search
	// set was empty.
	Distance int

	// Codewords holds every codeword at Distance, in ascending order.
	Codewords []Codeword
}

// NearestValid scans valid exhaustively and returns the smallest Hamming
// distance from cw and every codeword that achieves it. Ties are all kept.
func NearestValid(cw Codeword, valid []Codeword) Nearest {
	ret := Nearest{Distance: -1}
	for _, v := range valid {
		d := cw.Distance(v)
		if (ret.Distance < 0) || (d < ret.Distance) {
			ret.Distance = d
			ret.Codewords = append(ret.Codewords[:0], v)
		} else if d == ret.Distance {
			ret.Codewords = append(ret.Codewords, v)
		}
	}
	slices.Sort(ret.Codewords)
	return ret
}

// Correctability is how a receiver could explain a forbidden codeword.
type Correctability uint8

const (
	// Correctable means exactly one valid codeword is one bit away.
	Correctable = Correctability(0)
	// Ambiguous means several valid codewords are one bit away.
	Ambiguous = Correctability(1)
	// Uncorrectable means no single bit error explains the codeword.
	Uncorrectable = Correctability(2)
)

func (c Correctability) String() string {
	switch c {
	case Correctable:
		return "correctable"
	case Ambiguous:
		return "ambiguous"
	case Uncorrectable:
		return "uncorrectable"
	}
	return "Correctability(invalid)"
}

// ClassifyForbidden grades a forbidden codeword by its NearestValid result.
// It panics if n.Distance is 0: the codeword was valid.
func ClassifyForbidden(n Nearest) Correctability {
	switch {
	case n.Distance == 0:
		panic(errNotForbidden)
	case n.Distance != 1:
		return Uncorrectable
	case len(n.Codewords) == 1:
		return Correctable
	}
	return Ambiguous
}

// ForbiddenReport describes one forbidden codeword.
type ForbiddenReport struct {
	Codeword Codeword
	Nearest  Nearest
	Class    Correctability
}

// AnalyzeOptions are optional arguments to AnalyzeForbidden. The zero value is
// valid and means to use the default configuration.
type AnalyzeOptions struct {
	// Parallelism is the number of goroutines scanning forbidden codewords.
	// Zero or one means to scan on the calling goroutine. The result does
	// not depend on it.
	Parallelism int
}

// AnalyzeForbidden finds the nearest valid (data or control) codewords of
// every forbidden codeword. The reports are in ascending codeword order.
//
// options may be nil, which means to use the default configuration.
func (r *Registry) AnalyzeForbidden(options *AnalyzeOptions) []ForbiddenReport {
	forbidden := r.ForbiddenCodewords()
	valid := r.ValidCodewords()
	ret := make([]ForbiddenReport, len(forbidden))

	analyze := func(i int) {
		n := NearestValid(forbidden[i], valid)
		ret[i] = ForbiddenReport{
			Codeword: forbidden[i],
			Nearest:  n,
			Class:    ClassifyForbidden(n),
		}
	}

	workers := 1
	if options != nil {
		workers = min(options.Parallelism, len(forbidden))
	}
	if workers <= 1 {
		for i := range forbidden {
			analyze(i)
		}
		return ret
	}

	wg := sync.WaitGroup{}
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := w; i < len(forbidden); i += workers {
				analyze(i)
			}
		}()
	}
	wg.Wait()
	return ret
}

// ForbiddenCounts tallies ForbiddenReports by Class.
type ForbiddenCounts struct {
	Correctable   int
	Ambiguous     int
	Uncorrectable int
}

// CountForbidden tallies reports by Class.
func CountForbidden(reports []ForbiddenReport) ForbiddenCounts {
	ret := ForbiddenCounts{}
	for _, fr := range reports {
		switch fr.Class {
		case Correctable:
			ret.Correctable++
		case Ambiguous:
			ret.Ambiguous++
		case Uncorrectable:
			ret.Uncorrectable++
		}
	}
	return ret
}

// RotationReport is a control codeword as seen by a receiver whose symbol
// boundary is Shift bits late.
type RotationReport struct {
	Shift    int
	Codeword Codeword
	Nearest  Nearest
}

// ControlReport measures how distinguishable one control codeword is from the
// data codewords, both aligned and under every non-trivial rotation.
type ControlReport struct {
	Pair      ControlPair
	Codeword  Codeword
	Nearest   Nearest
	Rotations [CodewordWidth - 1]RotationReport
}

// MinRotatedDistance returns the smallest distance to a data codeword over
// all of cr's rotations.
func (cr *ControlReport) MinRotatedDistance() int {
	ret := -1
	for _, rr := range cr.Rotations {
		if (ret < 0) || (rr.Nearest.Distance < ret) {
			ret = rr.Nearest.Distance
		}
	}
	return ret
}

// ControlRobustness reports, for each control pair in packed order, the
// nearest data codewords to its control codeword and to each of that
// codeword's rotations by 1 to 9 bits.
func (r *Registry) ControlRobustness() []ControlReport {
	data := r.DataCodewords()
	ret := make([]ControlReport, 0, NumControlPairs)
	for _, p := range ControlPairs() {
		cw := r.Control(p)
		cr := ControlReport{
			Pair:     p,
			Codeword: cw,
			Nearest:  NearestValid(cw, data),
		}
		for k := range cr.Rotations {
			rot := cw.Rotate(k + 1)
			cr.Rotations[k] = RotationReport{
				Shift:    k + 1,
				Codeword: rot,
				Nearest:  NearestValid(rot, data),
			}
		}
		ret = append(ret, cr)
	}
	return ret
}
