package service

import (
	"github.com/Piyush-Dabare/vikas/customerrors"
	"github.com/Piyush-Dabare/vikas/model"
	"github.com/Piyush-Dabare/vikas/util"
	"github.com/Piyush-Dabare/vikas/validator"

	"github.com/rs/zerolog/log"
)

const (
	welcomeMessage = "Welcome to the Date Filtering API!"
	usageHint      = "/data?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD"
)

// QueryService answers the public endpoints. Query returns one of the
// request sentinels in customerrors when validation fails.
type QueryService interface {
	Describe() model.ApiInfo
	AvailableRange() model.DateRange
	Query(q model.RangeQuery) (*model.RangeResult, error)
}

type QueryServiceImpl struct {
	datasetSvc DatasetService
}

func NewQueryService(datasetSvc DatasetService) QueryService {
	return &QueryServiceImpl{datasetSvc: datasetSvc}
}

func (s *QueryServiceImpl) Describe() model.ApiInfo {
	return model.ApiInfo{
		Message:            welcomeMessage,
		Usage:              usageHint,
		AvailableDataRange: s.AvailableRange(),
	}
}

func (s *QueryServiceImpl) AvailableRange() model.DateRange {
	minDate, maxDate := s.datasetSvc.Bounds()
	return model.DateRange{
		MinDate: util.FormatDate(minDate),
		MaxDate: util.FormatDate(maxDate),
	}
}

// Query validates q in a fixed order: presence, format, ordering, bounds.
// Bounds are checked strictly; a range reaching past the dataset is
// rejected, never clamped.
func (s *QueryServiceImpl) Query(q model.RangeQuery) (*model.RangeResult, error) {
	if issues := validator.RangeQuerySchema.Validate(&q); len(issues) > 0 {
		return nil, customerrors.ErrMissingParameters
	}

	start, err := util.ParseQueryDate(q.StartDate)
	if err != nil {
		log.Debug().Err(err).Str("start_date", q.StartDate).Msg("Rejected start_date")
		return nil, customerrors.ErrInvalidDateFormat
	}
	end, err := util.ParseQueryDate(q.EndDate)
	if err != nil {
		log.Debug().Err(err).Str("end_date", q.EndDate).Msg("Rejected end_date")
		return nil, customerrors.ErrInvalidDateFormat
	}

	if start.After(end.Time) {
		return nil, customerrors.ErrInvertedRange
	}

	minDate, maxDate := s.datasetSvc.Bounds()
	if start.Before(minDate.Time) || end.After(maxDate.Time) {
		return nil, customerrors.ErrRangeOutOfBounds
	}

	rows := s.datasetSvc.FindRange(start, end)
	return &model.RangeResult{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		DataCount: len(rows),
		Data:      rows,
	}, nil
}
