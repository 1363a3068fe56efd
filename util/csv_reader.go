package util

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Piyush-Dabare/vikas/customerrors"
	"github.com/Piyush-Dabare/vikas/model"
)

// Cells matching one of these are treated as missing and serialize as null.
var naValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

type columnKind int

const (
	kindString columnKind = iota
	kindInt
	kindFloat
	kindBool
)

// ReadRows parses a CSV document with a header row. The header must name a
// DateColumn; every other column is typed as a whole from its cells.
// Rows are returned in file order.
func ReadRows(r io.Reader) ([]string, []model.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// 1. Header
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: missing header row", customerrors.ErrMalformedData)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read CSV header: %w", customerrors.ErrMalformedData, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns := dedupeColumns(header)
	dateIdx := -1
	for i, name := range columns {
		if name == model.DateColumn {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, nil, fmt.Errorf("%w: missing required column %q", customerrors.ErrMalformedData, model.DateColumn)
	}

	// 2. Records
	var records [][]string
	var lines []int
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: error reading csv record: %w", customerrors.ErrMalformedData, err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) > len(columns) {
			return nil, nil, fmt.Errorf("%w: line %d: expected %d fields, saw %d",
				customerrors.ErrMalformedData, line, len(columns), len(record))
		}
		for len(record) < len(columns) {
			record = append(record, "")
		}
		records = append(records, record)
		lines = append(lines, line)
	}

	if len(records) == 0 {
		return nil, nil, customerrors.ErrEmptyDataset
	}

	// 3. Typed rows
	kinds := make([]columnKind, len(columns))
	for j := range columns {
		if j != dateIdx {
			kinds[j] = inferKind(records, j)
		}
	}

	rows := make([]model.Row, 0, len(records))
	for i, record := range records {
		date, err := ParseSourceDate(record[dateIdx])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: invalid %s: %w",
				customerrors.ErrMalformedData, lines[i], model.DateColumn, err)
		}

		values := make([]any, len(columns))
		for j, cell := range record {
			if j == dateIdx {
				values[j] = date
				continue
			}
			values[j] = convert(kinds[j], cell)
		}
		rows = append(rows, model.NewRow(columns, values, date))
	}

	return columns, rows, nil
}

// dedupeColumns names blank headers "Unnamed: i" and suffixes repeated
// names as name.1, name.2, ...
func dedupeColumns(header []string) []string {
	out := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		cur := name
		for taken[cur] {
			counts[name]++
			cur = fmt.Sprintf("%s.%d", name, counts[name])
		}
		taken[cur] = true
		out[i] = cur
	}
	return out
}

func isMissing(cell string) bool {
	_, ok := naValues[cell]
	return ok
}

func inferKind(records [][]string, col int) columnKind {
	allInt, allFloat, allBool := true, true, true
	present, missing := 0, false

	for _, record := range records {
		cell := strings.TrimSpace(record[col])
		if isMissing(cell) {
			missing = true
			continue
		}
		present++
		if allInt {
			_, err := strconv.ParseInt(cell, 10, 64)
			allInt = err == nil
		}
		if allFloat {
			_, ok := parseFinite(cell)
			allFloat = ok
		}
		if allBool {
			allBool = strings.EqualFold(cell, "true") || strings.EqualFold(cell, "false")
		}
	}

	switch {
	case present == 0:
		return kindString
	case allInt && !missing:
		return kindInt
	case allInt || allFloat:
		return kindFloat
	case allBool:
		return kindBool
	default:
		return kindString
	}
}

func convert(kind columnKind, cell string) any {
	clean := strings.TrimSpace(cell)
	if isMissing(clean) {
		return nil
	}
	switch kind {
	case kindInt:
		v, _ := strconv.ParseInt(clean, 10, 64)
		return v
	case kindFloat:
		v, _ := parseFinite(clean)
		return v
	case kindBool:
		return strings.EqualFold(clean, "true")
	default:
		return cell
	}
}

// parseFinite rejects NaN and infinities, which JSON cannot carry.
func parseFinite(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
