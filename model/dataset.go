package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// DateColumn is the header name of the column every dataset is ordered by.
const DateColumn = "Date"

// Row is one immutable dataset record. Values are kept in header order and
// the row serializes as a JSON object in that same order.
type Row struct {
	columns []string
	values  []any
	date    Date
}

// NewRow builds a row over a shared header. values must line up with columns.
func NewRow(columns []string, values []any, date Date) Row {
	return Row{columns: columns, values: values, date: date}
}

func (r Row) Date() Date {
	return r.date
}

// Get returns the value stored under column.
func (r Row) Get(column string) (any, bool) {
	for i, name := range r.columns {
		if name == column {
			return r.values[i], true
		}
	}
	return nil, false
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Dataset is the in-memory table loaded at startup, sorted ascending by
// DateColumn. It is never empty and never modified after construction.
type Dataset struct {
	Source   string
	Columns  []string
	Rows     []Row
	LoadedAt time.Time
}

// Bounds returns the first and last dates of the sorted rows.
func (d *Dataset) Bounds() (Date, Date) {
	return d.Rows[0].Date(), d.Rows[len(d.Rows)-1].Date()
}

// DatasetSummary describes the loaded dataset for operators.
type DatasetSummary struct {
	Source   string    `json:"source" example:"https://example.com/data.csv"`
	Columns  []string  `json:"columns"`
	RowCount int       `json:"row_count" example:"365"`
	MinDate  string    `json:"min_date" example:"2024-01-01"`
	MaxDate  string    `json:"max_date" example:"2024-12-31"`
	LoadedAt time.Time `json:"loaded_at"`
}
