// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Command tablemap inspects the column mappings of the tables in a YAML
// catalog and the join-back attributes compiled for scans over them.
package main

import (
	"context"

	"github.com/cockroachdb/scancompile/pkg/util/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf(context.Background(), "%v", err)
	}
}
