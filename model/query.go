package model

// RangeQuery holds the raw query-string parameters of a range request.
type RangeQuery struct {
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
}

type DateRange struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

// ApiInfo is the body of the root endpoint.
type ApiInfo struct {
	Message            string    `json:"message"`
	Usage              string    `json:"usage"`
	AvailableDataRange DateRange `json:"available_data_range"`
}

// RangeResult echoes the requested bounds as given by the client.
type RangeResult struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DataCount int    `json:"data_count"`
	Data      []Row  `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// OutOfBoundsResponse tells the client which range it may ask for instead.
type OutOfBoundsResponse struct {
	Error          string `json:"error"`
	DatasetMinDate string `json:"dataset_min_date"`
	DatasetMaxDate string `json:"dataset_max_date"`
}
