package model

// Common Response structure for the operational endpoints
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Dataset summary fetched"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultResponse is a generic wrapper for Huma responses
type DefaultResponse struct {
	Body Response
}

// HealthResponse carries no body; huma answers with DefaultStatus only.
type HealthResponse struct{}
