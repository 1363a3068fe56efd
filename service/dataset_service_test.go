package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Piyush-Dabare/vikas/customerrors"
	"github.com/Piyush-Dabare/vikas/model"
	"github.com/Piyush-Dabare/vikas/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dailyCSV writes one row per day starting at from, newest first, so the
// loader has to sort.
func dailyCSV(from string, days int) string {
	start, _ := time.Parse(model.DateLayout, from)
	var b strings.Builder
	b.WriteString("Date,Close,Ticker\n")
	for i := days - 1; i >= 0; i-- {
		d := start.AddDate(0, 0, i)
		fmt.Fprintf(&b, "%s,%d.25,T%d\n", d.Format(model.DateLayout), 100+i, i)
	}
	return b.String()
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := util.ParseQueryDate(s)
	require.NoError(t, err)
	return d
}

func newTestDatasetService(t *testing.T, csv string) DatasetService {
	t.Helper()
	ds, err := BuildDataset("test.csv", strings.NewReader(csv))
	require.NoError(t, err)
	return NewDatasetService(ds)
}

type stubFetcher struct {
	body []byte
	err  error
}

func (f stubFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f.body, f.err
}

func TestBuildDataset_SortsAscending(t *testing.T) {
	svc := newTestDatasetService(t, dailyCSV("2024-01-01", 10))

	minDate, maxDate := svc.Bounds()
	assert.Equal(t, "2024-01-01", minDate.String())
	assert.Equal(t, "2024-01-10", maxDate.String())

	rows := svc.FindRange(minDate, maxDate)
	require.Len(t, rows, 10)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date().Before(rows[i-1].Date().Time), "row %d out of order", i)
	}
}

func TestBuildDataset_KeepsTies(t *testing.T) {
	csv := "Date,Id\n2024-01-02,a\n2024-01-01,b\n2024-01-02,c\n2024-01-01,d\n"
	svc := newTestDatasetService(t, csv)

	rows := svc.FindRange(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-01"))
	require.Len(t, rows, 2)
	first, _ := rows[0].Get("Id")
	second, _ := rows[1].Get("Id")
	assert.Equal(t, "b", first)
	assert.Equal(t, "d", second)

	all := svc.FindRange(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-02"))
	assert.Len(t, all, 4)
}

func TestFindRange(t *testing.T) {
	svc := newTestDatasetService(t, dailyCSV("2024-01-01", 10))

	t.Run("inner range", func(t *testing.T) {
		rows := svc.FindRange(mustDate(t, "2024-01-03"), mustDate(t, "2024-01-05"))
		require.Len(t, rows, 3)
		assert.Equal(t, "2024-01-03", rows[0].Date().String())
		assert.Equal(t, "2024-01-04", rows[1].Date().String())
		assert.Equal(t, "2024-01-05", rows[2].Date().String())
	})

	t.Run("single day at min", func(t *testing.T) {
		rows := svc.FindRange(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-01"))
		require.Len(t, rows, 1)
		assert.Equal(t, "2024-01-01", rows[0].Date().String())
	})

	t.Run("gap returns empty slice", func(t *testing.T) {
		sparse := newTestDatasetService(t, "Date,V\n2024-01-01,1\n2024-01-10,2\n")
		rows := sparse.FindRange(mustDate(t, "2024-01-03"), mustDate(t, "2024-01-05"))
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("soundness and completeness", func(t *testing.T) {
		minDate, maxDate := svc.Bounds()
		all := svc.FindRange(minDate, maxDate)
		for s := 0; s < len(all); s++ {
			for e := s; e < len(all); e++ {
				start, end := all[s].Date(), all[e].Date()
				got := svc.FindRange(start, end)
				assert.Len(t, got, e-s+1)
				for _, r := range got {
					assert.False(t, r.Date().Before(start.Time))
					assert.False(t, r.Date().After(end.Time))
				}
			}
		}
	})

	t.Run("result cannot grow into the dataset", func(t *testing.T) {
		rows := svc.FindRange(mustDate(t, "2024-01-02"), mustDate(t, "2024-01-03"))
		assert.Equal(t, len(rows), cap(rows))
	})
}

func TestLoadDataset(t *testing.T) {
	t.Run("parses fetched body", func(t *testing.T) {
		ds, err := LoadDataset(context.Background(), stubFetcher{body: []byte(dailyCSV("2023-06-01", 3))}, "stub://x")
		require.NoError(t, err)
		assert.Equal(t, "stub://x", ds.Source)
		assert.Equal(t, []string{"Date", "Close", "Ticker"}, ds.Columns)
		assert.Len(t, ds.Rows, 3)
	})

	t.Run("fetch failure passes through", func(t *testing.T) {
		fetchErr := fmt.Errorf("%w: boom", customerrors.ErrSourceUnavailable)
		_, err := LoadDataset(context.Background(), stubFetcher{err: fetchErr}, "stub://x")
		assert.True(t, errors.Is(err, customerrors.ErrSourceUnavailable))
	})

	t.Run("empty body is malformed", func(t *testing.T) {
		_, err := LoadDataset(context.Background(), stubFetcher{body: nil}, "stub://x")
		assert.True(t, errors.Is(err, customerrors.ErrMalformedData))
	})

	t.Run("header only is empty", func(t *testing.T) {
		_, err := LoadDataset(context.Background(), stubFetcher{body: []byte("Date,V\n")}, "stub://x")
		assert.True(t, errors.Is(err, customerrors.ErrEmptyDataset))
	})
}

func TestSummary(t *testing.T) {
	svc := newTestDatasetService(t, dailyCSV("2024-02-01", 5))

	summary := svc.Summary()
	assert.Equal(t, "test.csv", summary.Source)
	assert.Equal(t, 5, summary.RowCount)
	assert.Equal(t, "2024-02-01", summary.MinDate)
	assert.Equal(t, "2024-02-05", summary.MaxDate)
	assert.False(t, summary.LoadedAt.IsZero())
}
