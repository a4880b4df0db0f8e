// Package request issues HTTP requests against the exchange REST API and
// maps responses into typed results and errors. Each call is a single
// attempt; retry, backoff, rate limiting, and caching are the caller's
// problem by design.
package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/buger/jsonparser"
	"go.uber.org/zap"
)

var (
	errRequestSystemIsNil   = errors.New("request system is nil")
	errRequestFunctionIsNil = errors.New("request function is nil")
	errRequestItemNil       = errors.New("request item is nil")
	errInvalidPath          = errors.New("invalid path")
)

// APIError is an error envelope returned by the remote service, either in a
// non-2xx response or embedded in a 2xx body.
type APIError struct {
	Code       int64
	Message    string
	HTTPStatus int
}

// Error implements error
func (e *APIError) Error() string {
	return fmt.Sprintf("api error code %d: %s", e.Code, e.Message)
}

// HTTPError is a non-2xx response that did not carry a decodable error
// envelope.
type HTTPError struct {
	Status int
	Body   string
}

// Error implements error
func (e *HTTPError) Error() string {
	return fmt.Sprintf("unsuccessful HTTP status code: %d raw response: %s", e.Status, e.Body)
}

// New returns a new Requester
func New(name string, httpRequester *http.Client, opts ...RequesterOption) *Requester {
	if httpRequester == nil {
		httpRequester = &http.Client{Timeout: DefaultTimeout}
	}
	r := &Requester{
		HTTPClient: httpRequester,
		Name:       name,
		log:        zap.NewNop(),
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

// SendPayload constructs the request via newRequest and performs it once,
// decoding the response body into the item's Result when set.
func (r *Requester) SendPayload(ctx context.Context, newRequest Generate) error {
	if r == nil {
		return errRequestSystemIsNil
	}

	if newRequest == nil {
		return errRequestFunctionIsNil
	}

	p, err := newRequest()
	if err != nil {
		return err
	}

	req, err := p.validateRequest(ctx, r)
	if err != nil {
		return err
	}

	if p.Verbose {
		r.log.Debug("sending request",
			zap.String("service", r.Name),
			zap.String("method", p.Method),
			zap.String("path", p.Path))
		for k, d := range req.Header {
			r.log.Debug("request header",
				zap.String("service", r.Name),
				zap.String("key", k),
				zap.Strings("values", d))
		}
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if p.Verbose {
		r.log.Debug("received response",
			zap.String("service", r.Name),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(contents)))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > http.StatusAccepted {
		if apiErr := decodeErrorEnvelope(contents, resp.StatusCode); apiErr != nil {
			return apiErr
		}
		return &HTTPError{Status: resp.StatusCode, Body: string(contents)}
	}

	// The service reports some failures inside a 2xx body
	if apiErr := decodeErrorEnvelope(contents, resp.StatusCode); apiErr != nil {
		return apiErr
	}

	if p.Result != nil {
		if err := json.Unmarshal(contents, p.Result); err != nil {
			return fmt.Errorf("%s failed to decode response: %w", r.Name, err)
		}
	}
	return nil
}

// decodeErrorEnvelope sniffs contents for the service's {"code":…,"msg":…}
// envelope without committing to a full decode of an arbitrary body. A code
// of 0 or 200 alongside an empty message is not an error.
func decodeErrorEnvelope(contents []byte, httpStatus int) *APIError {
	code, err := jsonparser.GetInt(contents, "code")
	if err != nil {
		return nil
	}
	if code == 0 || code == 200 {
		return nil
	}
	msg, _ := jsonparser.GetString(contents, "msg")
	return &APIError{Code: code, Message: msg, HTTPStatus: httpStatus}
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if i == nil {
		return nil, errRequestItemNil
	}

	if i.Path == "" {
		return nil, errInvalidPath
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, i.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}

	if r.UserAgent != "" && req.Header.Get(userAgentHeader) == "" {
		req.Header.Add(userAgentHeader, r.UserAgent)
	}

	return req, nil
}
