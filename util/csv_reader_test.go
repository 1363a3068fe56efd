package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/Piyush-Dabare/vikas/customerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows_TypesColumns(t *testing.T) {
	src := "Date,Symbol,Volume,Price,Active,Note\n" +
		"2024-01-02,AAA,100,10.5,True,first\n" +
		"2024-01-01,BBB,200,11,false,\n"

	columns, rows, err := ReadRows(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Date", "Symbol", "Volume", "Price", "Active", "Note"}, columns)

	// file order is kept; sorting is the store's job
	assert.Equal(t, "2024-01-02", rows[0].Date().String())

	vol, ok := rows[0].Get("Volume")
	require.True(t, ok)
	assert.Equal(t, int64(100), vol)

	price, _ := rows[1].Get("Price")
	assert.Equal(t, 11.0, price)

	active, _ := rows[0].Get("Active")
	assert.Equal(t, true, active)

	note, _ := rows[1].Get("Note")
	assert.Nil(t, note)

	sym, _ := rows[1].Get("Symbol")
	assert.Equal(t, "BBB", sym)
}

func TestReadRows_IntColumnWithGapsBecomesFloat(t *testing.T) {
	src := "Date,Qty\n2024-01-01,1\n2024-01-02,NA\n2024-01-03,3\n"

	_, rows, err := ReadRows(strings.NewReader(src))
	require.NoError(t, err)

	first, _ := rows[0].Get("Qty")
	gap, _ := rows[1].Get("Qty")
	assert.Equal(t, 1.0, first)
	assert.Nil(t, gap)
}

func TestReadRows_DropsTimeOfDay(t *testing.T) {
	src := "Date,Value\n2024-03-05 17:45:00,1\n2024-03-06T08:00:00Z,2\n"

	_, rows, err := ReadRows(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", rows[0].Date().String())
	assert.Equal(t, "2024-03-06", rows[1].Date().String())
	assert.Zero(t, rows[0].Date().Hour())
}

func TestReadRows_HeaderNames(t *testing.T) {
	src := "\ufeffDate,Price,Price,,Price\n2024-01-01,1,2,3,4\n"

	columns, _, err := ReadRows(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Price", "Price.1", "Unnamed: 3", "Price.2"}, columns)
}

func TestReadRows_PadsShortRows(t *testing.T) {
	src := "Date,A,B\n2024-01-01,x\n"

	_, rows, err := ReadRows(strings.NewReader(src))
	require.NoError(t, err)

	b, ok := rows[0].Get("B")
	assert.True(t, ok)
	assert.Nil(t, b)
}

func TestReadRows_Failures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty document", "", customerrors.ErrMalformedData},
		{"no Date column", "Day,Value\n2024-01-01,1\n", customerrors.ErrMalformedData},
		{"unparseable date", "Date,Value\nyesterday,1\n", customerrors.ErrMalformedData},
		{"blank date", "Date,Value\n,1\n", customerrors.ErrMalformedData},
		{"too many fields", "Date,Value\n2024-01-01,1,2\n", customerrors.ErrMalformedData},
		{"header only", "Date,Value\n", customerrors.ErrEmptyDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadRows(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
