package preview

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/fbxshot/fbxshot/cmd/internal/logs"
	"github.com/fbxshot/fbxshot/cmd/internal/publish"
	"github.com/fbxshot/fbxshot/cmd/internal/render"
	"github.com/fbxshot/fbxshot/cmd/internal/watcher"
)

// Watch renders once, then re-renders whenever the model or the
// environment map changes on disk. It returns on interrupt.
func Watch(ctx context.Context, opts *job.Options, blenderPath string, upload publish.Config) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rerun := make(chan struct{}, 1)

	// Watcher goroutine
	go func() {
		err := watcher.WatchFiles(ctx, []string{opts.FBXPath, opts.HDRPath}, func() {
			select {
			case rerun <- struct{}{}:
			default:
			}
		})
		if err != nil {
			logs.Warn.Println("Watch error:", err)
		}
	}()

	// Handle Ctrl-C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		if err := render.Still(ctx, opts, blenderPath, upload); err != nil {
			// Keep watching: a broken intermediate save of the
			// model should not end the session.
			logs.Err.Println(err)
		}

		select {
		case <-sigCh:
			logs.Info.Println("Interrupt received, stopping preview")
			return nil
		case <-ctx.Done():
			return nil
		case <-rerun:
			logs.Info.Println("Input changed, re-rendering")
		}
	}
}
