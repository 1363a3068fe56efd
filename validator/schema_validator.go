package validator

import (
	"github.com/Oudwins/zog"
)

// RangeQueryShape requires both bounds of a range query to be non-empty.
// Format checks happen after presence so the first failing rule wins.
var RangeQueryShape = zog.Shape{
	"StartDate": zog.String().Required(),
	"EndDate":   zog.String().Required(),
}

var RangeQuerySchema = zog.Struct(RangeQueryShape)
