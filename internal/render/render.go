// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package render draws the 1024 codeword space as a paletted image, one cell
// per codeword, colored by what a receiver makes of it.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"

	"github.com/mithro/tmds-encoding/internal/nie"
	"github.com/mithro/tmds-encoding/lib/tmds"
)

var (
	ErrBadArgument = errors.New("render: bad argument")
	ErrBadFormat   = errors.New("render: bad format")
)

// Class is the color class of one codeword.
type Class uint8

const (
	Background    Class = 0
	DataDirect    Class = 1
	DataInverted  Class = 2
	Control       Class = 3
	Correctable   Class = 4
	Ambiguous     Class = 5
	Uncorrectable Class = 6
	Text          Class = 7

	numClasses = 8
)

var classNames = [numClasses]string{
	Background:    "background",
	DataDirect:    "data (direct)",
	DataInverted:  "data (inverted)",
	Control:       "control",
	Correctable:   "forbidden (correctable)",
	Ambiguous:     "forbidden (ambiguous)",
	Uncorrectable: "forbidden (uncorrectable)",
	Text:          "text",
}

func (c Class) String() string {
	if c < numClasses {
		return classNames[c]
	}
	return "Class(invalid)"
}

// Palette is indexed by Class.
var Palette = color.Palette{
	Background:    color.RGBA{0x20, 0x20, 0x20, 0xFF},
	DataDirect:    color.RGBA{0x33, 0x66, 0xCC, 0xFF},
	DataInverted:  color.RGBA{0x66, 0xCC, 0xFF, 0xFF},
	Control:       color.RGBA{0xFF, 0xCC, 0x00, 0xFF},
	Correctable:   color.RGBA{0x33, 0xAA, 0x33, 0xFF},
	Ambiguous:     color.RGBA{0xCC, 0x66, 0x00, 0xFF},
	Uncorrectable: color.RGBA{0xCC, 0x00, 0x00, 0xFF},
	Text:          color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
}

// Classes returns the Class of every codeword, indexed by codeword.
//
// options may be nil, which means to use the default configuration.
func Classes(r *tmds.Registry, options *tmds.AnalyzeOptions) (ret [tmds.NumCodewords]Class) {
	for i := range tmds.NumCodewords {
		cw := tmds.Codeword(i)
		switch r.Classify(cw).Kind() {
		case tmds.KindData:
			if cw.IsInverted() {
				ret[i] = DataInverted
			} else {
				ret[i] = DataDirect
			}
		case tmds.KindControl:
			ret[i] = Control
		}
	}
	for _, fr := range r.AnalyzeForbidden(options) {
		switch fr.Class {
		case tmds.Correctable:
			ret[fr.Codeword] = Correctable
		case tmds.Ambiguous:
			ret[fr.Codeword] = Ambiguous
		case tmds.Uncorrectable:
			ret[fr.Codeword] = Uncorrectable
		}
	}
	return ret
}

const (
	// GridWidth is the number of cells per row. Codeword i is drawn in
	// column (i % GridWidth) and row (i / GridWidth).
	GridWidth  = 32
	gridHeight = tmds.NumCodewords / GridWidth

	legendRowHeight = 16
	legendSwatch    = 12
	legendHeight    = 4 + (int(Uncorrectable-DataDirect+1) * legendRowHeight)
)

// Options are optional arguments to Map. The zero value is valid and means to
// use the default configuration.
type Options struct {
	// CellSize is the width and height, in pixels, of each codeword's cell.
	// Zero means 8. Cells of 4 pixels or more get a one pixel border.
	CellSize int

	// NoLegend is whether to omit the color key below the grid.
	NoLegend bool

	// Analyze configures the forbidden codeword analysis.
	Analyze *tmds.AnalyzeOptions
}

func (o *Options) cellSize() int {
	if (o != nil) && (o.CellSize > 0) {
		return o.CellSize
	}
	return 8
}

func (o *Options) legend() bool {
	return (o == nil) || !o.NoLegend
}

func (o *Options) analyze() *tmds.AnalyzeOptions {
	if o != nil {
		return o.Analyze
	}
	return nil
}

// CellOrigin returns the top-left pixel of cw's cell.
func CellOrigin(cw tmds.Codeword, options *Options) image.Point {
	n := options.cellSize()
	return image.Point{
		X: n * (int(cw) % GridWidth),
		Y: n * (int(cw) / GridWidth),
	}
}

// Map draws r's codeword space.
//
// options may be nil, which means to use the default configuration.
func Map(r *tmds.Registry, options *Options) (*image.Paletted, error) {
	if r == nil {
		return nil, ErrBadArgument
	}
	n := options.cellSize()
	if n > 1024 {
		return nil, ErrBadArgument
	}
	h := n * gridHeight
	if options.legend() {
		h += legendHeight
	}
	m := image.NewPaletted(image.Rect(0, 0, n*GridWidth, h), Palette)

	classes := Classes(r, options.analyze())
	inner := n
	if n >= 4 {
		inner = n - 1
	}
	for i, c := range classes {
		p := CellOrigin(tmds.Codeword(i), options)
		fill(m, image.Rect(p.X, p.Y, p.X+inner, p.Y+inner), c)
	}

	if options.legend() {
		drawLegend(m, n*gridHeight)
	}
	return m, nil
}

func fill(m *image.Paletted, r image.Rectangle, c Class) {
	r = r.Intersect(m.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := m.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+1 {
			m.Pix[i] = uint8(c)
		}
	}
}

func drawLegend(m *image.Paletted, top int) {
	d := font.Drawer{
		Dst:  m,
		Src:  image.NewUniform(Palette[Text]),
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	y := top + 4
	for c := DataDirect; c <= Uncorrectable; c++ {
		fill(m, image.Rect(2, y, 2+legendSwatch, y+legendSwatch), c)
		d.Dot = fixed.P(2+legendSwatch+4, y+ascent)
		d.DrawString(c.String())
		y += legendRowHeight
	}
}

// Format is an image file format that Encode can write.
type Format uint8

const (
	FormatPNG  Format = 0
	FormatBMP  Format = 1
	FormatTIFF Format = 2
	FormatNIE  Format = 3
)

// ParseFormat maps a file format name, such as "png", to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff":
		return FormatTIFF, nil
	case "nie", "nie-bn8":
		return FormatNIE, nil
	}
	return 0, ErrBadFormat
}

// Encode writes m to w in the given format.
func Encode(w io.Writer, m image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, m)
	case FormatBMP:
		return bmp.Encode(w, m)
	case FormatTIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	case FormatNIE:
		dst, err := nie.EncodeBN8(m)
		if err != nil {
			return err
		}
		_, err = w.Write(dst)
		return err
	}
	return ErrBadFormat
}
