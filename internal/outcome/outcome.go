// Package outcome normalizes upstream, store and validation results into
// the uniform (status, body) pair every gateway operation returns.
package outcome

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vitalbridge/vitalbridge/internal/provider"
)

// StatusNoData is the upstream's "no data yet" signal. It is not an error:
// the provider simply has nothing for the requested key yet, and the
// gateway must never cache it or report it as a failure.
const StatusNoData = http.StatusNoContent

// Outcome is the classified result of one gateway operation.
type Outcome struct {
	StatusCode int
	Body       json.RawMessage
}

// OK wraps a success payload.
func OK(body json.RawMessage) Outcome {
	return Outcome{StatusCode: http.StatusOK, Body: body}
}

// NoData is the explicit empty-result outcome.
func NoData() Outcome {
	return Outcome{StatusCode: StatusNoData}
}

// Invalid reports a local validation failure. Requests classified here
// never reach upstream or the store.
func Invalid(msg string) Outcome {
	return errorOutcome(http.StatusUnprocessableEntity, msg)
}

// StoreFailure reports a durable-store failure as fatal to the call.
func StoreFailure(err error) Outcome {
	return errorOutcome(http.StatusInternalServerError, fmt.Sprintf("store: %v", err))
}

// FromUpstream classifies an upstream call result. Transport failures map
// to 502, the no-data signal passes through as 204, and every HTTP
// response keeps its upstream status with the body unchanged.
func FromUpstream(resp *provider.Response, err error) Outcome {
	if err != nil {
		return errorOutcome(http.StatusBadGateway, err.Error())
	}
	if resp.StatusCode == StatusNoData {
		return NoData()
	}
	return Outcome{StatusCode: resp.StatusCode, Body: resp.Body}
}

// IsSuccess reports whether the outcome carries a success payload. The
// no-data signal is its own family, not a success.
func (o Outcome) IsSuccess() bool {
	return o.StatusCode != StatusNoData && o.StatusCode >= 200 && o.StatusCode < 300
}

// IsNoData reports whether the outcome is the explicit empty-result signal.
func (o Outcome) IsNoData() bool {
	return o.StatusCode == StatusNoData
}

// errorBody matches the respond package's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

func errorOutcome(status int, msg string) Outcome {
	b, _ := json.Marshal(errorBody{Error: http.StatusText(status), Code: status, Message: msg})
	return Outcome{StatusCode: status, Body: b}
}
