// Package trace records navigation activity as OpenTelemetry spans.
// Export is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package trace

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const defaultServiceName = "gtshell"

// Provider owns the tracer provider used by the shell.
type Provider struct {
	sdk *sdktrace.TracerProvider // nil when export is disabled
	tp  oteltrace.TracerProvider
}

// NewProvider builds an OTLP/HTTP-backed provider when an endpoint is
// configured, and a no-op provider otherwise. getenv is usually os.Getenv.
//
// The endpoint is normally a URL such as http://localhost:4318; a bare
// host:port is accepted and sent over plain HTTP.
func NewProvider(ctx context.Context, getenv func(string) string) (*Provider, error) {
	endpoint := getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return &Provider{tp: noop.NewTracerProvider()}, nil
	}

	exporter, err := otlptracehttp.New(ctx, endpointOptions(endpoint)...)
	if err != nil {
		return nil, errors.Wrap(err, "create otlp exporter")
	}

	serviceName := getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	return NewProviderWith(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	), nil
}

// endpointOptions maps OTEL_EXPORTER_OTLP_ENDPOINT onto exporter options.
// WithEndpoint only takes host:port, so URLs go through WithEndpointURL,
// which takes TLS from the scheme and uses the path as given. The env var
// names the collector base, so the traces path is appended here.
func endpointOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(strings.TrimRight(endpoint, "/") + "/v1/traces")}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

// NewProviderWith builds an SDK provider from explicit options. Tests use it
// with an in-memory syncer.
func NewProviderWith(opts ...sdktrace.TracerProviderOption) *Provider {
	sdk := sdktrace.NewTracerProvider(opts...)
	return &Provider{sdk: sdk, tp: sdk}
}

// Enabled reports whether spans leave the process.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// TracerProvider returns the underlying provider.
func (p *Provider) TracerProvider() oteltrace.TracerProvider {
	if p == nil {
		return noop.NewTracerProvider()
	}
	return p.tp
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return errors.Wrap(p.sdk.Shutdown(ctx), "shutdown tracer provider")
}
