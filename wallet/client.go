// Package wallet is a typed client binding for the exchange's wallet REST
// surface. Every endpoint is a single-attempt passthrough to the remote
// service; signing, parameter encoding, and response decoding are handled
// here, everything else (retries, rate limits, caching) is the caller's
// concern.
package wallet

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ashquarry/binancewallet/common"
	"github.com/ashquarry/binancewallet/common/crypto"
	"github.com/ashquarry/binancewallet/request"
)

const (
	apiKeyHeader = "X-MBX-APIKEY"

	// DefaultBaseURL is the production REST endpoint
	DefaultBaseURL = "https://api.binance.com"
	// DefaultUSBaseURL is the production REST endpoint for the US entity
	DefaultUSBaseURL = "https://api.binance.us"

	defaultRecvWindow = 5 * time.Second
)

var (
	// ErrAPIKeyUnset is returned when a client is constructed without an API key
	ErrAPIKeyUnset = errors.New("api key unset")
	// ErrAPISecretUnset is returned when a client is constructed without an API secret
	ErrAPISecretUnset = errors.New("api secret unset")
)

// Options configures a Client. Key and Secret are required; everything else
// has a sensible default.
type Options struct {
	Key    string
	Secret string
	// BaseURL overrides the production endpoint, e.g. for the spot testnet
	BaseURL string
	// RecvWindow is the clock-skew tolerance stamped on signed requests
	RecvWindow time.Duration
	// USVariant routes entity-specific endpoints to their binance.us paths
	USVariant  bool
	Verbose    bool
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client issues signed and unsigned requests against the wallet endpoints.
// Credentials are immutable after construction; a Client is safe for
// concurrent use.
type Client struct {
	key        string
	secret     string
	baseURL    string
	recvWindow time.Duration
	usVariant  bool
	verbose    bool
	requester  *request.Requester
	log        *zap.Logger
}

// New validates the supplied options and returns a Client
func New(o Options) (*Client, error) {
	if o.Key == "" {
		return nil, ErrAPIKeyUnset
	}
	if o.Secret == "" {
		return nil, ErrAPISecretUnset
	}

	baseURL := o.BaseURL
	if baseURL == "" {
		if o.USVariant {
			baseURL = DefaultUSBaseURL
		} else {
			baseURL = DefaultBaseURL
		}
	}

	recvWindow := o.RecvWindow
	if recvWindow <= 0 {
		recvWindow = defaultRecvWindow
	}

	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		key:        o.Key,
		secret:     o.Secret,
		baseURL:    baseURL,
		recvWindow: recvWindow,
		usVariant:  o.USVariant,
		verbose:    o.Verbose,
		requester:  request.New("binancewallet", o.HTTPClient, request.WithLogger(log)),
		log:        log,
	}, nil
}

// SendHTTPRequest sends an unauthenticated request
func (c *Client) SendHTTPRequest(ctx context.Context, path string, result interface{}) error {
	item := &request.Item{
		Method:  http.MethodGet,
		Path:    c.baseURL + path,
		Result:  result,
		Verbose: c.verbose,
	}

	return c.requester.SendPayload(ctx, func() (*request.Item, error) {
		return item, nil
	})
}

// SendAPIKeyHTTPRequest is a special API request where the api key is
// appended to the headers without a signature
func (c *Client) SendAPIKeyHTTPRequest(ctx context.Context, path string, result interface{}) error {
	headers := make(map[string]string)
	headers[apiKeyHeader] = c.key
	item := &request.Item{
		Method:  http.MethodGet,
		Path:    c.baseURL + path,
		Headers: headers,
		Result:  result,
		Verbose: c.verbose,
	}

	return c.requester.SendPayload(ctx, func() (*request.Item, error) {
		return item, nil
	})
}

// SendAuthHTTPRequest sends an authenticated HTTP request. The canonical
// query string is assembled from params plus recvWindow and a fresh
// timestamp, signed with the client secret, and the signature is appended as
// the final parameter so it covers exactly the transmitted string.
func (c *Client) SendAuthHTTPRequest(ctx context.Context, method, path string, params url.Values, result interface{}) error {
	if params == nil {
		params = url.Values{}
	}

	if params.Get("recvWindow") == "" {
		params.Set("recvWindow", strconv.FormatInt(c.recvWindow.Milliseconds(), 10))
	}

	return c.requester.SendPayload(ctx, func() (*request.Item, error) {
		params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
		payload := params.Encode()
		signature := crypto.Sign([]byte(c.secret), []byte(payload))
		headers := make(map[string]string)
		headers[apiKeyHeader] = c.key
		fullPath := common.EncodeURLValues(c.baseURL+path, params)
		fullPath += "&signature=" + signature
		return &request.Item{
			Method:  method,
			Path:    fullPath,
			Headers: headers,
			Result:  result,
			Verbose: c.verbose,
		}, nil
	})
}
