// Package magicloops talks to a Magic Loops "run" endpoint: one JSON POST
// carrying the new message plus the conversation so far, one JSON answer
// carrying the reply.
package magicloops

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// TranscriptEntry is one role-tagged history item on the wire.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type runRequest struct {
	Mensaje   string            `json:"mensaje"`
	Historial []TranscriptEntry `json:"historial"`
}

// Response is a successful (2xx, valid JSON) answer from the loop.
type Response struct {
	RequestID  string
	StatusCode int
	body       []byte
}

type Client struct {
	http     *resty.Client
	endpoint string
}

type Option func(*Client)

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithLogger routes resty's own diagnostics to l instead of dropping them.
func WithLogger(l resty.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.http.SetLogger(l)
		}
	}
}

func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("magic loops endpoint is required")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid Magic Loops URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid Magic Loops URL %q: scheme must be http or https", endpoint)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid Magic Loops URL %q: missing host", endpoint)
	}

	rc := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetLogger(discardLogger{})

	c := &Client{
		http:     rc,
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Run performs one exchange. Transport failures, non-2xx statuses and bodies
// that are not JSON are all returned as errors; a JSON body without a usable
// reply is not an error (see Response.Reply).
func (c *Client) Run(ctx context.Context, mensaje string, historial []TranscriptEntry) (*Response, error) {
	if historial == nil {
		historial = []TranscriptEntry{}
	}

	requestID := uuid.NewString()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(runRequest{Mensaje: mensaje, Historial: historial}).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", requestID, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("request %s: unexpected status code: %d", requestID, resp.StatusCode())
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("request %s: response is not valid JSON", requestID)
	}

	return &Response{
		RequestID:  requestID,
		StatusCode: resp.StatusCode(),
		body:       body,
	}, nil
}

// Reply returns the "respuesta" field. ok is false when the field is missing
// or holds an empty value (null, "", false, 0). Non-string values come back
// as their raw JSON text.
func (r *Response) Reply() (string, bool) {
	res := gjson.GetBytes(r.body, "respuesta")
	if !truthy(res) {
		return "", false
	}
	if res.Type == gjson.String {
		return res.Str, true
	}
	return res.Raw, true
}

func truthy(res gjson.Result) bool {
	switch res.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return res.Str != ""
	case gjson.Number:
		return res.Num != 0
	default:
		return true
	}
}

// Ping reports whether the endpoint's host answers HTTP at all. Any status
// code counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.http.R().SetContext(ctx).Head(c.endpoint)
	return err
}

// discardLogger keeps resty from writing to stderr underneath the TUI.
type discardLogger struct{}

func (discardLogger) Errorf(string, ...interface{}) {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Debugf(string, ...interface{}) {}
