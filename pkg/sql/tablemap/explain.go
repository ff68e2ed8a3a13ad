// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tablemap

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/roachpb"
	"github.com/cockroachdb/scancompile/pkg/sql/projection"
	"github.com/cockroachdb/scancompile/pkg/sql/scanattr"
)

// AttributeDescription is the decoded form of one scan attribute.
type AttributeDescription struct {
	Name string
	Size int
	// Value is a human-readable rendering of the payload.
	Value string
}

// ExplainScan decodes the join-back attributes attached to scan, in name
// order. Attributes it does not know are rendered as quoted bytes. A
// maintainer payload that is not in the ProtoMaintainerCodec format is
// rendered as hex.
func ExplainScan(scan *roachpb.ScanRequest) ([]AttributeDescription, error) {
	var res []AttributeDescription
	for _, name := range scan.AttributeNames() {
		b, _ := scan.Attribute(name)
		v, err := explainAttribute(name, b)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s", name)
		}
		res = append(res, AttributeDescription{Name: name, Size: len(b), Value: v})
	}
	return res, nil
}

func explainAttribute(name string, b []byte) (string, error) {
	switch name {
	case scanattr.DataTableColumnsToJoin:
		cols, err := scanattr.DecodeColumnsToJoin(b)
		if err != nil {
			return "", err
		}
		s := make([]string, len(cols))
		for i, c := range cols {
			s[i] = c.String()
		}
		return strings.Join(s, ", "), nil

	case scanattr.IndexProjector:
		p, err := projection.DecodeTupleProjector(b)
		if err != nil {
			return "", err
		}
		return p.String(), nil

	case scanattr.LocalIndexBuild:
		md, err := scanattr.DecodeProtoMaintainer(b)
		if err != nil {
			return fmt.Sprintf("%x", b), nil //nolint:returnerrcheck
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s@%d:", md.DataTableName, md.DataTableID)
		for _, idx := range md.Indexes {
			fmt.Fprintf(&sb, " %s@%d(%s)", idx.Name, idx.ID, strings.Join(idx.Columns, ","))
		}
		return sb.String(), nil

	case scanattr.ViewConstants:
		constants, err := scanattr.DecodeViewConstants(b)
		if err != nil {
			return "", err
		}
		s := make([]string, len(constants))
		for i, c := range constants {
			s[i] = fmt.Sprintf("%q", c)
		}
		return strings.Join(s, ", "), nil

	default:
		return fmt.Sprintf("%q", b), nil
	}
}
