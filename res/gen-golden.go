// Copyright 2026 The TMDS Encoding Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore

package main

// This program writes ../lib/tmds/testdata/codewords.txt, one line per
// codeword: its value in hex, its bits (bit 0 first) and its meaning.
//
// Usage: go run gen-golden.go

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mithro/tmds-encoding/lib/tmds"
)

const dstFileName = "../lib/tmds/testdata/codewords.txt"

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	r, err := tmds.NewRegistry(nil)
	if err != nil {
		return fmt.Errorf("tmds.NewRegistry: %v", err)
	}
	if err := r.Partition().Check(); err != nil {
		return fmt.Errorf("Partition.Check: %v", err)
	}

	buf := &bytes.Buffer{}
	for i := range tmds.NumCodewords {
		cw := tmds.Codeword(i)
		fmt.Fprintf(buf, "%03X %v %v\n", i, cw, r.Classify(cw))
	}

	if err := os.WriteFile(dstFileName, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("os.WriteFile: %v", err)
	}
	return nil
}
