// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/roachpb"
	"github.com/cockroachdb/scancompile/pkg/settings"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog/catalogyaml"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog/nstree"
	"github.com/cockroachdb/scancompile/pkg/sql/tablemap"
	"github.com/cockroachdb/scancompile/pkg/util/humanizeutil"
	"github.com/cockroachdb/scancompile/pkg/util/intsets"
	"github.com/cockroachdb/scancompile/pkg/util/log"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// cliContext holds the flag values of one invocation.
type cliContext struct {
	catalogPath      string
	settings         map[string]string
	warningThreshold int64
	thresholdFlag    *humanizeutil.BytesValue
	verbosity        int
	verbose          bool
	format           string

	table     string
	dataTable string
	extend    bool
	refs      []int
	txn       string
	retain    bool
	metrics   bool
}

// env is the catalog and configuration an invocation runs against.
type env struct {
	tables  *nstree.NameMap
	sv      *settings.Values
	metrics *tablemap.Metrics
	reg     *prometheus.Registry
	factory *tablemap.Factory
}

func newRootCmd() *cobra.Command {
	var c cliContext
	c.thresholdFlag = humanizeutil.NewBytesValue(&c.warningThreshold)

	root := &cobra.Command{
		Use:           "tablemap",
		Short:         "inspect table mappings and join-back scan attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetVerbosity(int32(c.verbosity))
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.catalogPath, "catalog", "", "path to the YAML catalog")
	pf.StringToStringVar(&c.settings, "set", nil, "setting overrides, as key=value")
	pf.Var(c.thresholdFlag, "attribute-warning-threshold",
		"total attribute size above which scan setup logs a warning")
	pf.IntVar(&c.verbosity, "v", 0, "log verbosity")
	pf.StringVar(&c.format, "format", defaultFormat(), "output format: table or tsv")
	_ = root.MarkPersistentFlagRequired("catalog")

	tables := &cobra.Command{
		Use:   "tables",
		Short: "list the tables of the catalog",
		Args:  cobra.NoArgs,
		RunE:  c.runTables,
	}
	columns := &cobra.Command{
		Use:   "columns",
		Short: "print the mapped columns of a table",
		Args:  cobra.NoArgs,
		RunE:  c.runColumns,
	}
	scan := &cobra.Command{
		Use:   "scan",
		Short: "compile the join-back attributes of a scan",
		Args:  cobra.NoArgs,
		RunE:  c.runScan,
	}
	projected := &cobra.Command{
		Use:   "projected",
		Short: "print the projected table and tuple projector of a mapping",
		Args:  cobra.NoArgs,
		RunE:  c.runProjected,
	}
	for _, cmd := range []*cobra.Command{columns, scan, projected} {
		f := cmd.Flags()
		f.StringVar(&c.table, "table", "", "table or index to map, as [schema.]name")
		f.StringVar(&c.dataTable, "data-table", "", "data table of the index, as [schema.]name")
		f.BoolVar(&c.extend, "extend", true, "extend the mapping with the data table columns")
		f.BoolVar(&c.verbose, "verbose", false, "dump the mapped columns")
		_ = cmd.MarkFlagRequired("table")
	}
	scan.Flags().IntSliceVar(&c.refs, "refs", nil, "mapped column positions read by the query; all extended columns if unset")
	scan.Flags().StringVar(&c.txn, "txn", "", "encoded transaction state")
	scan.Flags().BoolVar(&c.metrics, "metrics", false, "print the metrics recorded by the scan setup")
	projected.Flags().BoolVar(&c.retain, "retain", false, "keep the primary key columns in the row key")

	root.AddCommand(tables, columns, scan, projected)
	return root
}

func (c *cliContext) loadEnv() (*env, error) {
	file, err := catalogyaml.LoadFile(c.catalogPath)
	if err != nil {
		return nil, err
	}
	e := &env{
		tables:  &nstree.NameMap{},
		sv:      &settings.Values{},
		metrics: tablemap.NewMetrics(),
		reg:     prometheus.NewRegistry(),
	}
	file.Populate(e.tables)
	if err := file.ApplySettings(e.sv); err != nil {
		return nil, err
	}
	keys := maps.Keys(c.settings)
	slices.Sort(keys)
	u := settings.NewUpdater(e.sv)
	for _, k := range keys {
		if err := u.Set(k, c.settings[k]); err != nil {
			return nil, err
		}
	}
	if c.thresholdFlag.IsSet() {
		tablemap.AttributeSizeWarningThreshold.Override(e.sv, c.warningThreshold)
	}
	if err := e.metrics.Register(e.reg); err != nil {
		return nil, err
	}
	e.factory = &tablemap.Factory{Settings: e.sv, Metrics: e.metrics}
	return e, nil
}

func (e *env) lookup(name string) (*catalog.Table, error) {
	schema := ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		schema, name = name[:i], name[i+1:]
	}
	t := e.tables.GetByName(schema, name)
	if t == nil {
		return nil, errors.Newf("table %q not found in schema %q", name, schema)
	}
	return t, nil
}

func (c *cliContext) mapping(e *env) (*tablemap.TableMapping, error) {
	table, err := e.lookup(c.table)
	if err != nil {
		return nil, err
	}
	if c.dataTable == "" {
		return e.factory.ForTable(table), nil
	}
	data, err := e.lookup(c.dataTable)
	if err != nil {
		return nil, err
	}
	return e.factory.ForIndex(catalog.NewTableRef(table), catalog.NewTableRef(data), c.extend)
}

const (
	formatTable = "table"
	formatTSV   = "tsv"
)

// defaultFormat renders tables for humans and tab-separated values for
// scripts.
func defaultFormat() string {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return formatTable
	}
	return formatTSV
}

// rowWriter buffers rows and renders them in the selected format.
type rowWriter struct {
	w      io.Writer
	format string
	header []string
	rows   [][]string
}

func (c *cliContext) newRows(w io.Writer, header ...string) *rowWriter {
	return &rowWriter{w: w, format: c.format, header: header}
}

func (r *rowWriter) Append(row []string) {
	r.rows = append(r.rows, row)
}

func (r *rowWriter) Render() error {
	switch r.format {
	case formatTable:
		table := tablewriter.NewWriter(r.w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(r.header)
		table.AppendBulk(r.rows)
		table.Render()
		return nil
	case formatTSV:
		csvWriter := csv.NewWriter(r.w)
		csvWriter.Comma = '\t'
		_ = csvWriter.Write(r.header)
		return csvWriter.WriteAll(r.rows)
	default:
		return errors.Newf("unknown output format %q", r.format)
	}
}

func (c *cliContext) runTables(cmd *cobra.Command, _ []string) error {
	e, err := c.loadEnv()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	table := c.newRows(w, "id", "schema", "name", "type", "columns", "indexes")
	if err := e.tables.IterateByID(func(t *catalog.Table) error {
		var indexes []string
		for _, idx := range t.Indexes() {
			indexes = append(indexes, idx.Name())
		}
		table.Append([]string{
			fmt.Sprint(t.ID()), t.SchemaName(), t.Name(), t.Type().String(),
			fmt.Sprint(t.NumColumns()), strings.Join(indexes, ","),
		})
		return nil
	}); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "(%d tables)\n", e.tables.Len())
	return nil
}

func (c *cliContext) runColumns(cmd *cobra.Command, _ []string) error {
	e, err := c.loadEnv()
	if err != nil {
		return err
	}
	m, err := c.mapping(e)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	cols := m.MappedColumns()
	table := c.newRows(w, "#", "name", "family", "type", "nullable", "read as")
	for i := range cols {
		table.Append([]string{
			fmt.Sprint(i), cols[i].Name, cols[i].Family, cols[i].Type.String(),
			fmt.Sprint(cols[i].Nullable), m.NewColumnExpr(i).String(),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "extended columns offset: %d\n", m.ExtendedColumnsOffset())
	if c.verbose {
		pretty.Fprintf(w, "%# v\n", cols)
	}
	return nil
}

// positions reads a fixed set of mapped columns.
type positions intsets.Fast

func (p positions) InputCols() intsets.Fast { return intsets.Fast(p) }

type session struct {
	txn []byte
}

func (s session) EncodeTransaction() ([]byte, error) { return s.txn, nil }

func (c *cliContext) runScan(cmd *cobra.Command, _ []string) error {
	e, err := c.loadEnv()
	if err != nil {
		return err
	}
	m, err := c.mapping(e)
	if err != nil {
		return err
	}
	ref := m.DefaultExtendedColumnRef()
	if len(c.refs) > 0 {
		ref = m.ExtendedColumnRef([]tablemap.InputColumnReferencer{positions(intsets.MakeFast(c.refs...))})
	}
	families, columns, err := m.ExtendedColumnReferenceCount(ref)
	if err != nil {
		return err
	}

	name := m.Table().Name()
	scan, err := roachpb.NewScanRequest(roachpb.Span{
		Key:    roachpb.Key(name + "/"),
		EndKey: roachpb.Key(name + "0"),
	})
	if err != nil {
		return err
	}
	var s tablemap.Session
	if c.txn != "" {
		s = session{txn: []byte(c.txn)}
	}
	if err := m.SetupScanForExtendedTable(context.Background(), scan, ref, s); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "scan %s: joining back %d columns from %d families\n", scan.Span, columns, families)
	attrs, err := tablemap.ExplainScan(scan)
	if err != nil {
		return err
	}
	table := c.newRows(w, "attribute", "size", "value")
	for _, a := range attrs {
		table.Append([]string{a.Name, humanize.IBytes(uint64(a.Size)), a.Value})
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "total: %s\n", humanize.IBytes(uint64(scan.AttributesSize())))
	if c.verbose {
		pretty.Fprintf(w, "%# v\n", m.MappedColumns())
	}
	if c.metrics {
		return c.printMetrics(w, e.reg)
	}
	return nil
}

func (c *cliContext) printMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	table := c.newRows(w, "metric", "labels", "value")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			var v string
			switch {
			case m.GetCounter() != nil:
				v = fmt.Sprint(m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				v = fmt.Sprintf("count=%d sum=%g", m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
			default:
				continue
			}
			table.Append([]string{mf.GetName(), strings.Join(labels, ","), v})
		}
	}
	return table.Render()
}

func (c *cliContext) runProjected(cmd *cobra.Command, _ []string) error {
	e, err := c.loadEnv()
	if err != nil {
		return err
	}
	m, err := c.mapping(e)
	if err != nil {
		return err
	}
	p, err := m.CreateProjectedTable(context.Background(), c.retain)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	table := c.newRows(w, "#", "name", "family", "type", "source")
	for _, col := range p.Columns() {
		table.Append([]string{
			fmt.Sprint(col.Ordinal), col.Name, col.Family, col.Type.String(), col.Source.String(),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}
	projector := m.CreateTupleProjector(c.retain)
	fmt.Fprintf(w, "tuple projector: %s (%s encoded)\n", projector, humanize.IBytes(uint64(len(projector.Encode()))))
	if c.verbose {
		pretty.Fprintf(w, "%# v\n", p.Descriptor())
	}
	return nil
}
