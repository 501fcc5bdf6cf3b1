// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	ALIGN_LEFT  = tw.AlignLeft
	ALIGN_RIGHT = tw.AlignRight
)

// Table keeps the SetHeader/Append call shape on top of tablewriter v1.
type Table struct {
	*tablewriter.Table
	headers []string
}

func NewTable(w io.Writer) *Table {
	return &Table{Table: tablewriter.NewTable(w)}
}

// DefaultTable writes to the user writer of ul.
func DefaultTable(ul *UserLog, headers ...string) *Table {
	t := NewTable(ul.Writer())
	if len(headers) > 0 {
		t.SetHeader(headers)
	}
	return t
}

func (t *Table) SetHeader(headers []string) {
	t.headers = headers
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	t.Table.Header(anyHeaders...)
}

func (t *Table) SetAlignment(align tw.Align) {
	t.Table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = align
	})
}

func (t *Table) AppendCompat(row []string) {
	_ = t.Table.Append(row)
}
