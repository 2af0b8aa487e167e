// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package nie implements the encoding half of the NIE (Naive) image file
// format.
//
// It is an incomplete implementation (and hence an internal package), only
// providing what's needed to write codeword maps byte-for-byte reproducibly.
//
// NIE is specified at
// https://github.com/google/wuffs/blob/main/doc/spec/nie-spec.md
package nie

import (
	"errors"
	"image"
	"image/color"
)

var (
	ErrImageIsTooLarge = errors.New("nie: image is too large")
)

// Magic is the byte string prefix of every NIE image file.
const Magic = "\x6E\xC3\xAF\x45"

// HeaderSize is the length of a NIE header.
const HeaderSize = 16

// EncodeBN8 encodes m as a NIE file in BGRA order, non-premultiplied alpha, 8
// bytes per pixel (16 bits per channel).
func EncodeBN8(m image.Image) (ret []byte, retErr error) {
	b := m.Bounds()
	if (uint64(b.Dx()) > 0x7FFFFFFF) || (uint64(b.Dy()) > 0x7FFFFFFF) {
		return nil, ErrImageIsTooLarge
	}

	ret = make([]byte, 0, HeaderSize+(8*b.Dx()*b.Dy()))
	ret = append(ret, Magic...)
	ret = append(ret, 0xFF, 'b', 'n', '8')
	ret = appendU32LE(ret, uint32(b.Dx()))
	ret = appendU32LE(ret, uint32(b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			at := color.NRGBA64Model.Convert(m.At(x, y)).(color.NRGBA64)
			ret = append(ret,
				uint8(at.B>>0), uint8(at.B>>8),
				uint8(at.G>>0), uint8(at.G>>8),
				uint8(at.R>>0), uint8(at.R>>8),
				uint8(at.A>>0), uint8(at.A>>8),
			)
		}
	}
	return ret, nil
}

func appendU32LE(b []byte, u uint32) []byte {
	return append(b,
		uint8(u>>0),
		uint8(u>>8),
		uint8(u>>16),
		uint8(u>>24),
	)
}
