package client

import (
	"context"
	"fmt"
	"time"

	"watermyplants/internal/domain"

	"resty.dev/v3"
)

// DefaultRegisterURL is the registration endpoint of the Water My Plants API
const DefaultRegisterURL = "https://nickussery-watermyplants.herokuapp.com/registeruser"

// Registrar sends new user registrations to the remote API
type Registrar interface {
	Register(ctx context.Context, payload domain.NewUserPayload) (*Response, error)
}

// Response is what the registration endpoint answered
type Response struct {
	StatusCode int
	Body       string
}

// Success reports whether the endpoint accepted the request
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// HTTPRegistrar posts registrations as JSON
type HTTPRegistrar struct {
	http *resty.Client
	url  string
}

// NewHTTPRegistrar creates a registrar for the given endpoint.
// Requests are sent once; there are no retries.
func NewHTTPRegistrar(url string, timeout time.Duration) *HTTPRegistrar {
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPRegistrar{
		http: c,
		url:  url,
	}
}

// Register posts the payload and returns the raw answer. Any status is
// returned as a response; only transport failures produce an error.
func (r *HTTPRegistrar) Register(ctx context.Context, payload domain.NewUserPayload) (*Response, error) {
	res, err := r.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(r.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRegistrationFailed, err)
	}

	return &Response{
		StatusCode: res.StatusCode(),
		Body:       res.String(),
	}, nil
}

// Close releases idle connections
func (r *HTTPRegistrar) Close() error {
	return r.http.Close()
}
