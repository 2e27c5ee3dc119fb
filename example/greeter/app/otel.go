// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/z5labs/reader/example/greeter"

type shutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// initTracer returns the globally registered tracer unless tracing is
// enabled, in which case every span is synchronously written to w.
func initTracer(cfg Config, w io.Writer) (trace.Tracer, shutdownFunc, error) {
	if !cfg.Trace {
		return otel.Tracer(tracerName), noopShutdown, nil
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	return tp.Tracer(tracerName), tp.Shutdown, nil
}
