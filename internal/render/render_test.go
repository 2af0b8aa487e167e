// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/mithro/tmds-encoding/internal/nie"
	"github.com/mithro/tmds-encoding/lib/tmds"
)

func TestClasses(t *testing.T) {
	classes := Classes(tmds.Default(), nil)

	counts := map[Class]int{}
	for _, c := range classes {
		counts[c]++
	}
	assert.Equal(t, map[Class]int{
		DataDirect:    230,
		DataInverted:  230,
		Control:       4,
		Correctable:   60,
		Ambiguous:     452,
		Uncorrectable: 48,
	}, counts)

	assert.Equal(t, DataDirect, classes[0x1F0])
	assert.Equal(t, DataInverted, classes[0x200])
	assert.Equal(t, Control, classes[0x354])
}

func TestClassesParallel(t *testing.T) {
	want := Classes(tmds.Default(), nil)
	got := Classes(tmds.Default(), &tmds.AnalyzeOptions{Parallelism: 8})
	assert.Equal(t, want, got)
}

func TestMap(t *testing.T) {
	r := tmds.Default()
	m, err := Map(r, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8*GridWidth, 8*32+legendHeight), m.Bounds())

	classes := Classes(r, nil)
	for i, c := range classes {
		p := CellOrigin(tmds.Codeword(i), nil)
		if got := Class(m.ColorIndexAt(p.X, p.Y)); got != c {
			t.Fatalf("codeword 0x%03X: got %v, want %v", i, got, c)
		}
		if got := Class(m.ColorIndexAt(p.X+6, p.Y+6)); got != c {
			t.Fatalf("codeword 0x%03X interior: got %v, want %v", i, got, c)
		}
		if got := Class(m.ColorIndexAt(p.X+7, p.Y+7)); got != Background {
			t.Fatalf("codeword 0x%03X border: got %v, want %v", i, got, Background)
		}
	}

	text := 0
	for y := 8 * 32; y < m.Rect.Max.Y; y++ {
		for x := 0; x < m.Rect.Max.X; x++ {
			if Class(m.ColorIndexAt(x, y)) == Text {
				text++
			}
		}
	}
	assert.Positive(t, text)
}

func TestMapSmallCells(t *testing.T) {
	m, err := Map(tmds.Default(), &Options{CellSize: 2, NoLegend: true})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), m.Bounds())

	// Cells smaller than 4 pixels have no border.
	assert.Equal(t, Control, Class(m.ColorIndexAt(2*20+1, 2*26+1)))
	for _, px := range m.Pix {
		assert.NotEqual(t, uint8(Background), px)
	}
}

func TestMapRejectsBadArguments(t *testing.T) {
	_, err := Map(nil, nil)
	assert.ErrorIs(t, err, ErrBadArgument)

	_, err = Map(tmds.Default(), &Options{CellSize: 2000})
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		s    string
		want Format
	}{
		{"png", FormatPNG},
		{"bmp", FormatBMP},
		{"tiff", FormatTIFF},
		{"nie", FormatNIE},
		{"nie-bn8", FormatNIE},
	}
	for _, tc := range testCases {
		got, err := ParseFormat(tc.s)
		require.NoError(t, err, tc.s)
		assert.Equal(t, tc.want, got, tc.s)
	}

	_, err := ParseFormat("jpeg")
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestEncodeDecodes(t *testing.T) {
	m, err := Map(tmds.Default(), &Options{CellSize: 4})
	require.NoError(t, err)

	decoders := map[Format]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
	}
	for f, decode := range decoders {
		buf := &bytes.Buffer{}
		require.NoError(t, Encode(buf, m, f))

		got, err := decode(buf)
		require.NoError(t, err, "format %d", f)
		require.Equal(t, m.Bounds(), got.Bounds(), "format %d", f)
		for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
			for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
				want := Palette[m.ColorIndexAt(x, y)]
				if g := color.RGBAModel.Convert(got.At(x, y)); g != want {
					t.Fatalf("format %d: (%d, %d): got %v, want %v", f, x, y, g, want)
				}
			}
		}
	}
}

func TestEncodeNIE(t *testing.T) {
	m, err := Map(tmds.Default(), &Options{CellSize: 1, NoLegend: true})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Encode(buf, m, FormatNIE))
	assert.Equal(t, nie.HeaderSize+(8*32*32), buf.Len())
	assert.Equal(t, nie.Magic, string(buf.Bytes()[:4]))

	assert.ErrorIs(t, Encode(buf, m, Format(99)), ErrBadFormat)
}
