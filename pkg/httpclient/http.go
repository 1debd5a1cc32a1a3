package httpclient

import (
	"context"
	"net/http"
)

// HTTPClient is the outbound HTTP surface used by repositories that talk
// to external collaborators.
type HTTPClient interface {
	Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error)
	Post(ctx context.Context, endpoint string, body interface{}, headers map[string]string, result interface{}) (*BaseResponse, error)
}

type BaseResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}
