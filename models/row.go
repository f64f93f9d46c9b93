// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ColumnCount is the number of columns every row of the served file has.
const ColumnCount = 4

// Row is a single line of the served file split into its columns.
// Missing trailing fields are stored as empty strings.
type Row struct {
	LineNo  int
	Columns [ColumnCount]string
}

// NewRow builds a Row from up to ColumnCount fields. Extra fields are joined
// into the last column so that no data from the line is lost.
func NewRow(lineNo int, fields []string) Row {
	row := Row{LineNo: lineNo}
	for i, f := range fields {
		if i >= ColumnCount-1 {
			row.Columns[ColumnCount-1] = strings.Join(fields[ColumnCount-1:], " ")
			break
		}
		row.Columns[i] = f
	}

	return row
}

// Column returns the value of the 1-based column n, or an empty string when n
// is outside 1..ColumnCount.
func (r Row) Column(n int) string {
	if n < 1 || n > ColumnCount {
		return ""
	}

	return r.Columns[n-1]
}

// Line renders the row back into a space separated line, dropping empty
// trailing columns.
func (r Row) Line() string {
	last := ColumnCount
	for last > 0 && r.Columns[last-1] == "" {
		last--
	}

	return strings.Join(r.Columns[:last], " ")
}
