// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package catalogyaml loads table snapshots from YAML schema files.
//
// A file lists tables and, optionally, setting overrides:
//
//	settings:
//	  sql.local_index.join_back.enabled: "false"
//	tables:
//	- id: 52
//	  name: T
//	  columns:
//	  - {name: k}
//	  - {name: a, family: F, type: INT, nullable: true}
//	  indexes: [IDX]
//
// Indexes are referenced by name and must be defined in the same file with
// type INDEX. View constants are given as their resolved value; the stored
// form gets the trailing separator byte appended.
package catalogyaml

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/settings"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog/nstree"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// viewConstantSeparator terminates stored view constants.
const viewConstantSeparator = 0

type fileSpec struct {
	Settings map[string]string `yaml:"settings"`
	Tables   []tableSpec       `yaml:"tables"`
}

type tableSpec struct {
	ID                     uint32       `yaml:"id"`
	TenantID               string       `yaml:"tenant_id"`
	Schema                 string       `yaml:"schema"`
	Name                   string       `yaml:"name"`
	Type                   string       `yaml:"type"`
	PKName                 string       `yaml:"pk_name"`
	SaltBuckets            int          `yaml:"salt_buckets"`
	MultiTenant            bool         `yaml:"multi_tenant"`
	ViewIndexID            *int64       `yaml:"view_index_id"`
	Timestamp              int64        `yaml:"timestamp"`
	SequenceNumber         int64        `yaml:"sequence_number"`
	ImmutableRows          bool         `yaml:"immutable_rows"`
	StoreNulls             bool         `yaml:"store_nulls"`
	WALDisabled            bool         `yaml:"wal_disabled"`
	RowKeyOrderOptimizable bool         `yaml:"row_key_order_optimizable"`
	Transactional          bool         `yaml:"transactional"`
	UpdateCacheFrequency   int64        `yaml:"update_cache_frequency"`
	IndexDisableTimestamp  int64        `yaml:"index_disable_timestamp"`
	IndexType              string       `yaml:"index_type"`
	ViewType               string       `yaml:"view_type"`
	Columns                []columnSpec `yaml:"columns"`
	Indexes                []string     `yaml:"indexes"`
}

type columnSpec struct {
	Name         string  `yaml:"name"`
	Family       string  `yaml:"family"`
	Type         string  `yaml:"type"`
	Nullable     bool    `yaml:"nullable"`
	ViewConstant *string `yaml:"view_constant"`
}

// File is a loaded schema file.
type File struct {
	// Settings are the encoded setting overrides, by key.
	Settings map[string]string
	// Tables are the loaded snapshots in file order, indexes included.
	Tables []*catalog.Table
}

// LoadFile reads and parses the schema file at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening schema file")
	}
	defer f.Close()
	res, err := Load(f)
	return res, errors.Wrapf(err, "loading %s", path)
}

// Load parses a schema file. Unknown fields are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var spec fileSpec
	if err := dec.Decode(&spec); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding schema")
	}

	// Indexes are built first so that data tables can refer to them.
	res := &File{Settings: spec.Settings, Tables: make([]*catalog.Table, len(spec.Tables))}
	indexes := make(map[string]*catalog.Table)
	for pass := 0; pass < 2; pass++ {
		for i := range spec.Tables {
			ts := &spec.Tables[i]
			isIndex := ts.Type == catalog.TableTypeIndex.String()
			if isIndex != (pass == 0) {
				continue
			}
			t, err := ts.build(indexes)
			if err != nil {
				return nil, errors.Wrapf(err, "table %d (%q)", i, ts.Name)
			}
			if isIndex {
				if _, ok := indexes[ts.Name]; ok {
					return nil, errors.Newf("duplicate index name %q", ts.Name)
				}
				indexes[ts.Name] = t
			}
			res.Tables[i] = t
		}
	}
	return res, nil
}

func (ts *tableSpec) build(indexes map[string]*catalog.Table) (*catalog.Table, error) {
	desc := catalog.TableDescriptor{
		ID:                     catalog.ID(ts.ID),
		TenantID:               catalog.TenantID(ts.TenantID),
		SchemaName:             ts.Schema,
		Name:                   ts.Name,
		PKName:                 ts.PKName,
		SaltBuckets:            ts.SaltBuckets,
		MultiTenant:            ts.MultiTenant,
		ViewIndexID:            ts.ViewIndexID,
		Timestamp:              ts.Timestamp,
		SequenceNumber:         ts.SequenceNumber,
		ImmutableRows:          ts.ImmutableRows,
		StoreNulls:             ts.StoreNulls,
		WALDisabled:            ts.WALDisabled,
		RowKeyOrderOptimizable: ts.RowKeyOrderOptimizable,
		Transactional:          ts.Transactional,
		UpdateCacheFrequency:   ts.UpdateCacheFrequency,
		IndexDisableTimestamp:  ts.IndexDisableTimestamp,
	}
	var ok bool
	if ts.Type != "" {
		if desc.Type, ok = catalog.ParseTableType(ts.Type); !ok {
			return nil, errors.Newf("unknown table type %q", ts.Type)
		}
	}
	if ts.ViewType != "" {
		if desc.ViewType, ok = catalog.ParseViewType(ts.ViewType); !ok {
			return nil, errors.Newf("unknown view type %q", ts.ViewType)
		}
	}
	switch ts.IndexType {
	case "", catalog.IndexTypeGlobal.String():
		desc.IndexType = catalog.IndexTypeGlobal
	case catalog.IndexTypeLocal.String():
		desc.IndexType = catalog.IndexTypeLocal
	default:
		return nil, errors.Newf("unknown index type %q", ts.IndexType)
	}
	for _, cs := range ts.Columns {
		c := catalog.Column{Name: cs.Name, Family: cs.Family, Nullable: cs.Nullable, Type: catalog.TypeString}
		if cs.Type != "" {
			if c.Type, ok = catalog.ParseColumnType(cs.Type); !ok {
				return nil, errors.Newf("column %q: unknown type %q", cs.Name, cs.Type)
			}
		}
		if cs.ViewConstant != nil {
			c.ViewConstant = append([]byte(*cs.ViewConstant), viewConstantSeparator)
		}
		desc.Columns = append(desc.Columns, c)
	}
	for _, name := range ts.Indexes {
		idx, ok := indexes[name]
		if !ok {
			return nil, errors.Newf("unknown index %q", name)
		}
		desc.Indexes = append(desc.Indexes, idx)
	}
	return catalog.MakeTable(desc)
}

// Populate upserts every table of the file into nm.
func (f *File) Populate(nm *nstree.NameMap) {
	for _, t := range f.Tables {
		nm.Upsert(t)
	}
}

// Table returns the table with the given name, searching all schemas.
func (f *File) Table(name string) (*catalog.Table, error) {
	for _, t := range f.Tables {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, errors.Newf("table %q not found", name)
}

// ApplySettings applies the file's setting overrides to sv, in key order.
func (f *File) ApplySettings(sv *settings.Values) error {
	keys := maps.Keys(f.Settings)
	slices.Sort(keys)
	u := settings.NewUpdater(sv)
	for _, k := range keys {
		if err := u.Set(k, f.Settings[k]); err != nil {
			return err
		}
	}
	return nil
}
