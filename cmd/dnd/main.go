// Command dnd replays drag scenarios against the impact resolver and runs an
// interactive terminal demo.
//
// Usage:
//
//	dnd replay [file|dir]...   Replay YAML scenarios and print impacts
//	dnd demo                   Drag items with the mouse in the terminal
//	dnd version                Print version information
//
// Examples:
//
//	dnd replay scenarios/reorder.yaml
//	dnd replay --json --parallel 8 scenarios/
//	dnd demo --axis horizontal --lists 3 --combine
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/grindlemire/go-dnd/internal/debug"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err != nil {
		debug.Logger().Debug("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	_ = debug.Close()
	if err != nil {
		os.Exit(1)
	}
}
