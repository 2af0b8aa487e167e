// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mithro/tmds-encoding/lib/tmds"
)

func TestBuild(t *testing.T) {
	s, err := Build(tmds.Default(), &tmds.AnalyzeOptions{Parallelism: 4})
	require.NoError(t, err)

	assert.Equal(t, 1024, s.Codewords)
	assert.Equal(t, 460, s.Data)
	assert.Equal(t, 52, s.SingleCodewordBytes)
	assert.Equal(t, 4, s.Control)
	assert.Equal(t, ForbiddenSummary{
		Total:              560,
		Correctable:        60,
		CorrectablePercent: 10,
		Ambiguous:          452,
		Uncorrectable:      48,
		UncorrectableList:  s.Forbidden.UncorrectableList,
	}, s.Forbidden)
	assert.Len(t, s.Forbidden.UncorrectableList, 48)

	require.Len(t, s.Controls, 4)
	c := s.Controls[0]
	assert.Equal(t, "0010101011", c.Codeword)
	assert.Equal(t, 7, c.Transitions)
	assert.Equal(t, 0, c.Bias)
	assert.Equal(t, 2, c.Distance)
	require.Len(t, c.Rotations, 9)
	assert.Equal(t, 1, c.Rotations[0].Shift)
	assert.Equal(t, "0101010110", c.Rotations[0].Codeword)
}

func TestBuildRejectsNil(t *testing.T) {
	_, err := Build(nil, nil)
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestWriteRoundTrips(t *testing.T) {
	s, err := Build(tmds.Default(), nil)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, s))
	assert.Contains(t, buf.String(), "single_codeword_bytes: 52\n")
	assert.Contains(t, buf.String(), "  correctable: 60\n")

	got := Summary{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, s, got)
}
