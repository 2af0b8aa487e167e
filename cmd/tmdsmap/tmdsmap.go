// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// tmdsmap summarizes or draws the TMDS (Transition Minimized Differential
// Signaling) 10-bit codeword space.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/mithro/tmds-encoding/internal/render"
	"github.com/mithro/tmds-encoding/internal/report"
	"github.com/mithro/tmds-encoding/lib/tmds"
)

var (
	cellFlag     = flag.Int("cell", 8, "cell size in pixels")
	legendFlag   = flag.Bool("legend", true, "whether to draw the color key")
	outputFlag   = flag.String("output", "", "output format")
	parallelFlag = flag.Int("parallel", 1, "number of goroutines analyzing forbidden codewords")
)

const usageStr = `tmdsmap summarizes or draws the TMDS 10-bit codeword space.

Usage:

    tmdsmap [flags]

Pass one of these flags to choose the output:

    -output=yaml (this is the default)
    -output=bmp
    -output=nie-bn8
    -output=png
    -output=tiff

YAML output summarizes the data, control and forbidden codewords, how far
each forbidden codeword is from a valid one and how close each control
codeword, received out of phase, comes to a data codeword.

Image output draws one cell per codeword. These flags tune it:

    -cell=8        (cell size in pixels)
    -legend=true   (whether to draw the color key)

For either output, -parallel=N spreads the forbidden codeword analysis over
N goroutines. The result does not depend on N.

The output is written to stdout.
`

var ErrBadCellFlag = errors.New("main: bad -cell flag")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("tmdsmap takes no filenames")
	}

	r, err := tmds.NewRegistry(nil)
	if err != nil {
		return err
	}
	analyze := &tmds.AnalyzeOptions{Parallelism: *parallelFlag}

	switch *outputFlag {
	case "", "yaml":
		return summarize(os.Stdout, r, analyze)
	}
	f, err := render.ParseFormat(*outputFlag)
	if err != nil {
		return err
	}
	return draw(os.Stdout, r, analyze, f)
}

func summarize(w io.Writer, r *tmds.Registry, analyze *tmds.AnalyzeOptions) error {
	s, err := report.Build(r, analyze)
	if err != nil {
		return err
	}
	return report.Write(w, s)
}

func draw(w io.Writer, r *tmds.Registry, analyze *tmds.AnalyzeOptions, f render.Format) error {
	if *cellFlag <= 0 {
		return ErrBadCellFlag
	}
	m, err := render.Map(r, &render.Options{
		CellSize: *cellFlag,
		NoLegend: !*legendFlag,
		Analyze:  analyze,
	})
	if err != nil {
		return err
	}
	return render.Encode(w, m, f)
}
