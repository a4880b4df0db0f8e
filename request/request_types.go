package request

import (
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	userAgentHeader = "User-Agent"

	// DefaultTimeout is applied to the owned http.Client when the caller
	// does not supply one
	DefaultTimeout = 15 * time.Second
)

// Item is everything needed to perform one HTTP request
type Item struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    io.Reader
	Result  interface{}
	Verbose bool
}

// Generate defers request construction until send time so that signatures
// cover a fresh timestamp
type Generate func() (*Item, error)

// Requester performs single-attempt HTTP requests. Failures surface to the
// caller immediately; there is no retry, backoff, or rate limiting.
type Requester struct {
	Name       string
	HTTPClient *http.Client
	UserAgent  string
	log        *zap.Logger
}

// RequesterOption configures a Requester
type RequesterOption func(*Requester)

// WithLogger sets the logger used for verbose request output
func WithLogger(l *zap.Logger) RequesterOption {
	return func(r *Requester) {
		if l != nil {
			r.log = l
		}
	}
}

// WithUserAgent sets the User-Agent header applied to outbound requests
func WithUserAgent(ua string) RequesterOption {
	return func(r *Requester) {
		r.UserAgent = ua
	}
}
