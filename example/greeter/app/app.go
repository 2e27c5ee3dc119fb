// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package app wires the greeting readers into a command line application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/z5labs/reader"
	"github.com/z5labs/reader/example/greeter/greeting"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DefaultName is greeted when no names are given.
const DefaultName = "World"

// NewCmd returns the root greeter command. Every flag can also be
// set with a GREETER_ prefixed environment variable e.g. --log-level
// can be set with GREETER_LOG_LEVEL.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "greeter [names...]",
		Short:         "Greet everyone by name",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}

			cfg, err := readConfig(v)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}

	registerFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, out, errOut io.Writer, cfg Config, names []string) (err error) {
	log := slog.New(slog.NewJSONHandler(errOut, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	tracer, shutdown, err := initTracer(cfg, errOut)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, shutdown(context.Background()))
	}()

	if len(names) == 0 {
		names = []string{DefaultName}
	}

	g := greeter{
		log:     log,
		tracer:  tracer,
		message: greeting.Message,
	}
	msgs, err := g.greet(ctx, cfg, names)
	if err != nil {
		log.ErrorContext(ctx, "failed to render greetings", slog.String("error", err.Error()))
		return err
	}

	for _, msg := range msgs {
		_, err = fmt.Fprintln(out, msg)
		if err != nil {
			return err
		}
	}
	log.InfoContext(ctx, "rendered greetings", slog.Int("count", len(msgs)))
	return nil
}

type greeter struct {
	log     *slog.Logger
	tracer  trace.Tracer
	message reader.Reader[greeting.Config, string]
}

// greet runs the message reader once per name, concurrently, and
// returns the rendered messages in the same order as names.
func (g greeter) greet(ctx context.Context, cfg Config, names []string) ([]string, error) {
	if !greeting.Punctuated.Run(cfg.environment("")) {
		g.log.WarnContext(ctx, "no punctuation configured")
	}

	msgs := make([]string, len(names))
	eg, egctx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			spanCtx, span := g.tracer.Start(egctx, "greeting.Message")
			defer span.End()
			span.SetAttributes(attribute.String("greeting.name", name))

			msg, err := render(g.message, cfg.environment(name))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}

			g.log.DebugContext(spanCtx, "rendered greeting", slog.String("name", name))
			msgs[i] = msg
			return nil
		})
	}
	err := eg.Wait()
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// RenderError is returned when a greeting panics while being rendered.
type RenderError struct {
	Name  string
	Value any
}

// Error implements the [builtin.error] interface.
func (e RenderError) Error() string {
	return fmt.Sprintf("failed to render greeting for %q: %v", e.Name, e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e RenderError) Unwrap() error {
	err, ok := e.Value.(error)
	if !ok {
		return nil
	}
	return err
}

func render[A any](r reader.Reader[greeting.Config, A], env greeting.Config) (_ A, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err = RenderError{
			Name:  env.Name,
			Value: v,
		}
	}()

	return r.Run(env), nil
}
