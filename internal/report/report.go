// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package report summarizes a tmds.Registry and its analysis as YAML.
package report

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mithro/tmds-encoding/lib/tmds"
)

var (
	ErrBadArgument = errors.New("report: bad argument")
)

// Summary is the top level YAML document.
type Summary struct {
	Codewords           int              `yaml:"codewords"`
	Data                int              `yaml:"data"`
	SingleCodewordBytes int              `yaml:"single_codeword_bytes"`
	Control             int              `yaml:"control"`
	Forbidden           ForbiddenSummary `yaml:"forbidden"`
	Controls            []ControlSummary `yaml:"controls"`
}

// ForbiddenSummary tallies the forbidden codewords by correctability.
type ForbiddenSummary struct {
	Total              int      `yaml:"total"`
	Correctable        int      `yaml:"correctable"`
	CorrectablePercent int      `yaml:"correctable_percent"`
	Ambiguous          int      `yaml:"ambiguous"`
	Uncorrectable      int      `yaml:"uncorrectable"`
	UncorrectableList  []string `yaml:"uncorrectable_codewords,flow"`
}

// ControlSummary describes one control codeword.
type ControlSummary struct {
	C0          uint8             `yaml:"c0"`
	C1          uint8             `yaml:"c1"`
	Codeword    string            `yaml:"codeword"`
	Transitions int               `yaml:"transitions"`
	Bias        int               `yaml:"bias"`
	Distance    int               `yaml:"distance"`
	Rotations   []RotationSummary `yaml:"rotations"`
}

// RotationSummary describes a control codeword received Shift bits late.
type RotationSummary struct {
	Shift    int      `yaml:"shift"`
	Codeword string   `yaml:"codeword"`
	Distance int      `yaml:"distance"`
	Nearest  []string `yaml:"nearest,flow"`
}

func codewordStrings(cws []tmds.Codeword) []string {
	ret := make([]string, len(cws))
	for i, cw := range cws {
		ret[i] = cw.String()
	}
	return ret
}

// Build analyzes r.
//
// options may be nil, which means to use the default configuration.
func Build(r *tmds.Registry, options *tmds.AnalyzeOptions) (Summary, error) {
	if r == nil {
		return Summary{}, ErrBadArgument
	}
	p := r.Partition()
	if err := p.Check(); err != nil {
		return Summary{}, err
	}

	s := Summary{
		Codewords: tmds.NumCodewords,
		Data:      len(p.Data),
		Control:   len(p.Control),
	}
	for d := range 256 {
		if r.Encode(byte(d)).Len() == 1 {
			s.SingleCodewordBytes++
		}
	}

	reports := r.AnalyzeForbidden(options)
	counts := tmds.CountForbidden(reports)
	s.Forbidden = ForbiddenSummary{
		Total:         len(reports),
		Correctable:   counts.Correctable,
		Ambiguous:     counts.Ambiguous,
		Uncorrectable: counts.Uncorrectable,
	}
	if len(reports) > 0 {
		s.Forbidden.CorrectablePercent = (100 * counts.Correctable) / len(reports)
	}
	for _, fr := range reports {
		if fr.Class == tmds.Uncorrectable {
			s.Forbidden.UncorrectableList = append(s.Forbidden.UncorrectableList, fr.Codeword.String())
		}
	}

	for _, cr := range r.ControlRobustness() {
		stats := cr.Codeword.Stats()
		cs := ControlSummary{
			C0:          cr.Pair.C0(),
			C1:          cr.Pair.C1(),
			Codeword:    cr.Codeword.String(),
			Transitions: stats.Transitions,
			Bias:        stats.Bias,
			Distance:    cr.Nearest.Distance,
		}
		for _, rr := range cr.Rotations {
			cs.Rotations = append(cs.Rotations, RotationSummary{
				Shift:    rr.Shift,
				Codeword: rr.Codeword.String(),
				Distance: rr.Nearest.Distance,
				Nearest:  codewordStrings(rr.Nearest.Codewords),
			})
		}
		s.Controls = append(s.Controls, cs)
	}
	return s, nil
}

// Write encodes s to w as a YAML document.
func Write(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
