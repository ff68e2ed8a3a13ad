// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package projection

import "github.com/cockroachdb/errors"

// ColumnProjector describes one column of a result set.
type ColumnProjector struct {
	// Name is the name the column is exposed under.
	Name string
	// TableName is the name of the table owning the column.
	TableName string
	Expr      Expr
	// CaseSensitive is set if the name must be matched exactly.
	CaseSensitive bool
}

// RowProjector describes the columns of a result set in order.
type RowProjector struct {
	columns          []ColumnProjector
	estimatedRowSize int
	byName           map[string]int
}

// NewRowProjector returns a projector over the given columns. The slice is
// retained.
func NewRowProjector(columns []ColumnProjector, estimatedRowSize int) *RowProjector {
	p := &RowProjector{
		columns:          columns,
		estimatedRowSize: estimatedRowSize,
		byName:           make(map[string]int, len(columns)),
	}
	for i := range columns {
		// The first column with a given name wins.
		if _, ok := p.byName[columns[i].Name]; !ok {
			p.byName[columns[i].Name] = i
		}
	}
	return p
}

// Columns returns the column projectors in result-set order.
func (p *RowProjector) Columns() []ColumnProjector { return p.columns }

// NumColumns returns the number of columns.
func (p *RowProjector) NumColumns() int { return len(p.columns) }

// EstimatedRowSize returns the estimated size in bytes of a row, or 0 if
// unknown.
func (p *RowProjector) EstimatedRowSize() int { return p.estimatedRowSize }

// ColumnIndex returns the ordinal of the named column.
func (p *RowProjector) ColumnIndex(name string) (int, error) {
	if i, ok := p.byName[name]; ok {
		return i, nil
	}
	return 0, errors.Newf("undefined column %q", name)
}
