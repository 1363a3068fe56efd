package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/Piyush-Dabare/vikas/model"
)

var (
	// month and day may be written without zero padding
	inputLayout  = "2006-1-2"
	outputLayout = model.DateLayout

	sourceLayouts = []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
	}
)

// ParseQueryDate parses a client supplied date. The value is not trimmed.
func ParseQueryDate(value string) (model.Date, error) {
	t, err := time.Parse(inputLayout, value)
	if err != nil {
		return model.Date{}, err
	}
	return model.NewDate(t), nil
}

// ParseSourceDate parses a Date cell from the dataset, discarding any
// time-of-day component.
func ParseSourceDate(value string) (model.Date, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return model.Date{}, fmt.Errorf("empty date")
	}
	for _, layout := range sourceLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return model.NewDate(t), nil
		}
	}
	return model.Date{}, fmt.Errorf("unrecognized date %q", value)
}

func FormatDate(d model.Date) string {
	return d.Format(outputLayout)
}
