// Package api is the typed contract and HTTP client for the QuickHelp
// backend's JSON endpoints.
//
// An application-level failure (success:false) is not a Go error: methods
// return the decoded response and the caller branches on Success. Only
// transport failures (network errors, undecodable bodies, cancellation) are
// returned as errors.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"quickhelp/internal/jsonutil"
	"quickhelp/internal/metrics"
)

const tracerName = "quickhelp/api"

// Client talks to one QuickHelp backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its transport is
// still wrapped with backend metrics.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout: a hung
// backend call blocks until the caller's context is cancelled.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: base url %q must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api: base url %q has no host", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		logger:  zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(c)
	}
	c.http.Transport = metrics.InstrumentTransport(c.http.Transport)
	return c, nil
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Stats fetches knowledge base counters (GET /api/stats).
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.do(ctx, http.MethodGet, PathStats, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Clusters fetches the saved clusters (GET /api/clusters).
func (c *Client) Clusters(ctx context.Context) (*ClustersResponse, error) {
	var resp ClustersResponse
	if err := c.do(ctx, http.MethodGet, PathClusters, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs a ranked search (POST /api/search).
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, PathSearch, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ask asks a natural-language question (POST /api/ask).
func (c *Client) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	var resp AskResponse
	if err := c.do(ctx, http.MethodPost, PathAsk, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cluster runs clustering with the given algorithm (POST /api/cluster).
func (c *Client) Cluster(ctx context.Context, req ClusterRequest) (*ClustersResponse, error) {
	var resp ClustersResponse
	if err := c.do(ctx, http.MethodPost, PathCluster, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Index indexes the documents under a path (POST /api/index).
func (c *Client) Index(ctx context.Context, req IndexRequest) (*IndexResponse, error) {
	var resp IndexResponse
	if err := c.do(ctx, http.MethodPost, PathIndex, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// successReporter lets do() record the success flag without knowing the type.
type successReporter interface {
	succeeded() bool
}

func (e Envelope) succeeded() bool { return e.Success }

// do performs one JSON round trip. Any HTTP status is accepted as long as the
// body decodes, since the backend reports failures as {success:false} with
// 4xx/5xx codes.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	name := strings.TrimPrefix(path, "/api/")
	ctx, span := c.tracer.Start(ctx, "api."+name,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("quickhelp.endpoint", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		reader, err = jsonutil.EncodeBody(body, name)
		if err != nil {
			return err
		}
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("backend call failed",
			zap.String("endpoint", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", name, unwrapURLError(err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if err := jsonutil.DecodeBody(resp.Body, jsonutil.DefaultBodyLimit, out, name); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("%w (HTTP %d)", err, resp.StatusCode)
		}
		return err
	}

	ok := false
	if sr, isReporter := out.(successReporter); isReporter {
		ok = sr.succeeded()
	}
	span.SetAttributes(attribute.Bool("quickhelp.success", ok))
	c.logger.Debug("backend call",
		zap.String("endpoint", path),
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", ok),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// unwrapURLError drops the *url.Error wrapper, whose message repeats the
// method and full URL, keeping the cause (and its errors.Is identity).
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
