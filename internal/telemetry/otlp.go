// Package telemetry installs the OpenTelemetry tracer provider that backend
// calls report to.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Environment variables read by Setup.
const (
	EnvEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName = "OTEL_SERVICE_NAME"
	EnvInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "quickhelp"

// Provider exports spans to an OTLP endpoint.
type Provider struct {
	provider *sdktrace.TracerProvider
	endpoint string
}

// Setup creates an OTLP/HTTP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set
// and installs it as the global tracer provider.
// Returns nil if the endpoint is not configured (disabled); the global
// no-op provider stays in place.
func Setup(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		return nil, nil
	}

	host, insecure := splitEndpoint(endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if insecure || os.Getenv(EnvInsecure) == "true" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName()),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return &Provider{provider: provider, endpoint: host}, nil
}

// ServiceName returns OTEL_SERVICE_NAME or DefaultServiceName.
func ServiceName() string {
	if name := os.Getenv(EnvServiceName); name != "" {
		return name
	}
	return DefaultServiceName
}

// Enabled reports whether spans are being exported.
func (p *Provider) Enabled() bool {
	return p != nil
}

// Endpoint returns the host:port spans are sent to.
func (p *Provider) Endpoint() string {
	if p == nil {
		return ""
	}
	return p.endpoint
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// splitEndpoint accepts either host:port or a URL. Plain http URLs and bare
// host:port values are sent without TLS.
func splitEndpoint(endpoint string) (host string, insecure bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "https://"), "/"), false
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "http://"), "/"), true
	default:
		return endpoint, true
	}
}
