// Package httpapi is the HTTP client shared by the hosted backend adapters.
// It sets the project key and bearer token on every request, encodes and
// decodes JSON, and turns non-2xx responses into *APIError.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/heartmarshall/learnhub/internal/adapter/httpapi"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Client talks to one hosted backend project.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	tracer  trace.Tracer
}

// New creates a Client for the project at baseURL.
func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("httpapi: parse base url: %w", err)
	}
	return &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// BaseURL returns the project base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Request describes one call to the backend.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	// Body is encoded as JSON unless RawBody is set.
	Body        any
	RawBody     io.Reader
	ContentType string
	// Token overrides the bearer token taken from the context.
	Token string
	// Anonymous sends the project key as bearer and ignores the context.
	Anonymous bool
}

// Response is a successful backend response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Do sends req and returns the response, or *APIError for non-2xx statuses.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, req.Method+" "+req.Path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	httpReq, err := c.build(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		semconv.HTTPRequestMethodKey.String(req.Method),
		semconv.URLFull(httpReq.URL.Redacted()),
		semconv.ServerAddress(c.baseURL.Hostname()),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("httpapi: %s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := parseError(resp.StatusCode, body)
		span.SetAttributes(attribute.String("backend.error_code", apiErr.Code))
		span.SetStatus(codes.Error, apiErr.Error())
		return nil, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpapi: read body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// JSON sends req and decodes the response body into out, if out is non-nil.
func (c *Client) JSON(ctx context.Context, req Request, out any) (*Response, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if out != nil && len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return nil, fmt.Errorf("httpapi: decode %s %s: %w", req.Method, req.Path, err)
		}
	}
	return resp, nil
}

func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	u := c.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	contentType := req.ContentType
	switch {
	case req.RawBody != nil:
		body = req.RawBody
	case req.Body != nil:
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("httpapi: encode body: %w", err)
		}
		body = bytes.NewReader(b)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("httpapi: build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	httpReq.Header.Set("apikey", c.apiKey)

	token := req.Token
	if token == "" && !req.Anonymous {
		token, err = tokenFromContext(ctx)
		if err != nil {
			return nil, err
		}
	}
	if token == "" {
		token = c.apiKey
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	return httpReq, nil
}

// Ping checks that the project's auth endpoint answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/auth/v1/health", Anonymous: true})
	return err
}
