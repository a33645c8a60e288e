// Package main is the entry point for the extbuild native build orchestrator.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/cmd/extbuild/commands"
	"go.trai.ch/extbuild/internal/app"
	_ "go.trai.ch/extbuild/internal/wiring"
)

type verbosity interface {
	SetVerbose(verbose bool)
}

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	if v, ok := components.Logger.(verbosity); ok {
		cli.SetVerboseHook(v.SetVerbose)
	}

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
