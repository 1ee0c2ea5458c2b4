package mugloar

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"
)

const DefaultTimeout = 30 * time.Second

var (
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrMalformedJSON    = errors.New("malformed json body")
	ErrMissingField     = errors.New("missing field in response")
	errNilGatewayClient = errors.New("gateway client is nil")
)

type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

type doer interface {
	DoTimeout(ctx context.Context, req *protocol.Request, resp *protocol.Response, timeout time.Duration) error
}

// Gateway performs one request and hands back the parsed body. It never
// retries.
type Gateway struct {
	client  doer
	timeout time.Duration
}

func NewGateway(timeout time.Duration) (*Gateway, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c, err := client.NewClient(
		client.WithDialer(standard.NewDialer()),
		client.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}),
		client.WithDialTimeout(timeout),
		client.WithClientReadTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("new http client: %w", err)
	}
	return &Gateway{client: c, timeout: timeout}, nil
}

func (g *Gateway) Send(ctx context.Context, url, method string) (gjson.Result, error) {
	if method != consts.MethodGet && method != consts.MethodPost {
		return gjson.Result{}, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if g == nil || g.client == nil {
		return gjson.Result{}, errNilGatewayClient
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(url)
	req.Header.Set("Accept", "application/json")

	if err := g.client.DoTimeout(ctx, req, resp, g.timeout); err != nil {
		return gjson.Result{}, fmt.Errorf("%s %s: %w", method, url, err)
	}

	body := string(resp.Body())
	if code := resp.StatusCode(); code/100 != 2 {
		return gjson.Result{}, &StatusError{Method: method, URL: url, Code: code, Body: truncate(body, 256)}
	}
	if !gjson.Valid(body) {
		return gjson.Result{}, fmt.Errorf("%w: %s %s", ErrMalformedJSON, method, url)
	}
	return gjson.Parse(body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
