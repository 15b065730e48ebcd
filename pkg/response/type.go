package response

import (
	"encoding/json"
	"time"

	"threatmonitor-api/pkg/errors"
)

// Resp is the envelope for every JSON response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to HTTP errors at the delivery boundary.
type ErrorMapping map[error]*errors.HTTPError

type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
