// Command fxkmeans generates a random 2D dataset, clusters it with the
// fixed-point k-means kernel and prints the final centroids.
//
// Usage:
//
//	fxkmeans run [--config fxkmeans.toml] [--n 50] [--m 3] [--dir ./out]
//	fxkmeans generate --dir ./out
//	fxkmeans run --dir ./out --from-current
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
