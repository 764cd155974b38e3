// Package provider wraps the upstream health-data API. The gateway treats
// the provider as a black box: it forwards requests and hands back status
// and body without interpreting payloads.
package provider

import (
	"context"
	"encoding/json"
	"net/url"
)

// Response is the structured result of an upstream call. It is returned
// for every HTTP status; only transport failures surface as errors.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// Provider issues authenticated requests to the upstream health-data API.
type Provider interface {
	// Do performs one upstream request. A non-nil error means the request
	// never produced an HTTP response (DNS, connect, timeout).
	Do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error)
}

// Resource paths understood by the upstream API.
const (
	PathProfile      = "/v1/profile"
	PathUserTimeZone = "/v1/user/timezone"
	PathStatus       = "/v1/status"
)

// DataPath returns the read path for a health-data category. An empty
// subtype selects the daily summary, otherwise the category event feed.
func DataPath(category, subtype string) string {
	if subtype == "" {
		return "/v1/" + category + "/summary"
	}
	return "/v1/" + category + "/events/" + subtype
}
