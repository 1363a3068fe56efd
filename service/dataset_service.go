package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Piyush-Dabare/vikas/model"
	"github.com/Piyush-Dabare/vikas/util"

	"github.com/rs/zerolog/log"
)

// DatasetFetcher returns the raw CSV document found at location.
type DatasetFetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// DatasetService is a read-only view over the dataset loaded at startup.
// It holds no locks: nothing writes to the dataset once it is built.
type DatasetService interface {
	Bounds() (model.Date, model.Date)
	FindRange(start, end model.Date) []model.Row
	Summary() model.DatasetSummary
}

type DatasetServiceImpl struct {
	dataset *model.Dataset
	minDate model.Date
	maxDate model.Date
}

// LoadDataset fetches, parses and sorts the dataset at location.
func LoadDataset(ctx context.Context, fetcher DatasetFetcher, location string) (*model.Dataset, error) {
	raw, err := fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return BuildDataset(location, bytes.NewReader(raw))
}

// BuildDataset parses CSV from r and orders the rows by date. Rows sharing a
// date keep their file order.
func BuildDataset(source string, r io.Reader) (*model.Dataset, error) {
	columns, rows, err := util.ReadRows(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date().Before(rows[j].Date().Time)
	})

	return &model.Dataset{
		Source:   source,
		Columns:  columns,
		Rows:     rows,
		LoadedAt: time.Now().UTC(),
	}, nil
}

// NewDatasetService wraps a dataset produced by LoadDataset or BuildDataset.
func NewDatasetService(dataset *model.Dataset) DatasetService {
	minDate, maxDate := dataset.Bounds()

	log.Info().
		Str("source", dataset.Source).
		Int("rows", len(dataset.Rows)).
		Str("min_date", util.FormatDate(minDate)).
		Str("max_date", util.FormatDate(maxDate)).
		Msg("Dataset loaded")

	return &DatasetServiceImpl{
		dataset: dataset,
		minDate: minDate,
		maxDate: maxDate,
	}
}

func (s *DatasetServiceImpl) Bounds() (model.Date, model.Date) {
	return s.minDate, s.maxDate
}

// FindRange returns the rows dated within [start, end], in dataset order.
// The rows are sorted, so the match is one contiguous run located with two
// binary searches. The returned slice is capped and cannot grow into the
// dataset.
func (s *DatasetServiceImpl) FindRange(start, end model.Date) []model.Row {
	rows := s.dataset.Rows
	lo := sort.Search(len(rows), func(i int) bool {
		return !rows[i].Date().Before(start.Time)
	})
	hi := sort.Search(len(rows), func(i int) bool {
		return rows[i].Date().After(end.Time)
	})
	if lo >= hi {
		return []model.Row{}
	}
	return rows[lo:hi:hi]
}

func (s *DatasetServiceImpl) Summary() model.DatasetSummary {
	return model.DatasetSummary{
		Source:   s.dataset.Source,
		Columns:  s.dataset.Columns,
		RowCount: len(s.dataset.Rows),
		MinDate:  util.FormatDate(s.minDate),
		MaxDate:  util.FormatDate(s.maxDate),
		LoadedAt: s.dataset.LoadedAt,
	}
}
