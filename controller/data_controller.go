package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/Piyush-Dabare/vikas/customerrors"
	"github.com/Piyush-Dabare/vikas/model"
	"github.com/Piyush-Dabare/vikas/service"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

const noStore = "no-store, no-cache, must-revalidate, max-age=0"

type DataController struct {
	querySvc service.QueryService
}

func NewDataController(qs service.QueryService) *DataController {
	return &DataController{
		querySvc: qs,
	}
}

// RegisterRoutes mounts the public API at the router root.
func (ctrl *DataController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", ctrl.home)
	router.GET("/data", ctrl.getData)
}

// home describes how to call the API and which dates are available.
func (ctrl *DataController) home(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.querySvc.Describe())
}

// getData returns every row dated within [start_date, end_date].
func (ctrl *DataController) getData(c *gin.Context) {
	c.Header("Cache-Control", noStore)

	var query model.RangeQuery
	if err := mapstructure.Decode(firstValues(c.Request.URL.Query()), &query); err != nil {
		ctrl.handleError(c, customerrors.ErrMissingParameters)
		return
	}

	result, err := ctrl.querySvc.Query(query)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *DataController) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customerrors.ErrRangeOutOfBounds):
		available := ctrl.querySvc.AvailableRange()
		c.JSON(http.StatusBadRequest, model.OutOfBoundsResponse{
			Error:          customerrors.ErrRangeOutOfBounds.Error(),
			DatasetMinDate: available.MinDate,
			DatasetMaxDate: available.MaxDate,
		})
	case errors.Is(err, customerrors.ErrMissingParameters):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: customerrors.ErrMissingParameters.Error()})
	case errors.Is(err, customerrors.ErrInvalidDateFormat):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: customerrors.ErrInvalidDateFormat.Error()})
	case errors.Is(err, customerrors.ErrInvertedRange):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: customerrors.ErrInvertedRange.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Range query failed")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Internal server error"})
	}
}

// firstValues keeps the first value of each query parameter, the way a
// plain lookup of a repeated parameter behaves.
func firstValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}
