// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/z5labs/reader/example/greeter/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := app.NewCmd().ExecuteContext(ctx)
	if err != nil {
		slog.Default().Error("failed to run", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}
