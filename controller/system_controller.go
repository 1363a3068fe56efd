package controller

import (
	"context"
	"net/http"

	"github.com/Piyush-Dabare/vikas/model"
	"github.com/Piyush-Dabare/vikas/service"

	"github.com/danielgtaylor/huma/v2"
)

type SystemController struct {
	datasetSvc service.DatasetService
}

func NewSystemController(ds service.DatasetService) *SystemController {
	return &SystemController{datasetSvc: ds}
}

func (ctrl *SystemController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "health-check",
		Method:        http.MethodGet,
		Path:          "/api/health",
		Summary:       "System Health Check",
		Description:   "Confirm that the server is up and running. Returns a 200 status code with no body.",
		DefaultStatus: http.StatusOK,
		Tags:          []string{"System"},
	}, ctrl.HealthCheck)

	huma.Register(api, huma.Operation{
		OperationID:   "health-check-head",
		Method:        http.MethodHead,
		Path:          "/api/health",
		Summary:       "System Health Check (HEAD)",
		DefaultStatus: http.StatusOK,
		Tags:          []string{"System"},
	}, ctrl.HealthCheck)

	huma.Register(api, huma.Operation{
		OperationID: "get-dataset-summary",
		Method:      http.MethodGet,
		Path:        "/api/dataset",
		Summary:     "Loaded Dataset Summary",
		Description: "Source, columns, row count and date bounds of the dataset loaded at startup.",
		Tags:        []string{"System"},
	}, ctrl.GetDatasetSummary)
}

func (ctrl *SystemController) HealthCheck(ctx context.Context, input *struct{}) (*model.HealthResponse, error) {
	return &model.HealthResponse{}, nil
}

func (ctrl *SystemController) GetDatasetSummary(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.datasetSvc.Summary(), "Dataset summary fetched"), nil
}
