package controller

import "github.com/Piyush-Dabare/vikas/model"

// NewResponse creates a success response with the given data and message.
func NewResponse(data any, message string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: true,
			Message: message,
			Data:    data,
		},
	}
}
