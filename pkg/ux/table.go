// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Row is a label/value pair shown in a two-column table.
type Row struct {
	Label string
	Value string
}

// NewTable creates a left-aligned table with the given headers.
func NewTable(w io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	table.Header(anyHeaders...)
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	return table
}

// PrintRows renders rows as a two-column table. Rows with an empty value are
// skipped.
func PrintRows(w io.Writer, header string, rows []Row) error {
	table := NewTable(w, header, "Value")
	for _, r := range rows {
		if r.Value == "" {
			continue
		}
		if err := table.Append([]string{r.Label, r.Value}); err != nil {
			return err
		}
	}
	return table.Render()
}
