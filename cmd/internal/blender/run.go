package blender

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fbxshot/fbxshot/cmd/internal/framing"
	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/fbxshot/fbxshot/cmd/internal/logs"
)

// Driver exit codes, mirrored from shotlib/driver.py.
const (
	driverExitImport = 3
	driverExitRender = 4
	driverExitSave   = 5
)

// Run renders one still image: it locates Blender, unpacks the driver,
// and blocks until the host exits. The render output file must exist
// afterwards or the run is a *job.RenderError.
func Run(ctx context.Context, opts *job.Options, cam framing.Placement, blenderPath string) error {
	bin, err := FindBlender(blenderPath)
	if err != nil {
		return &job.RenderError{Err: err}
	}

	libPath, err := DriverDir()
	if err != nil {
		return &job.RenderError{Err: fmt.Errorf("driver: %w", err)}
	}
	logs.Debug.Println("shotlib path:", libPath)

	if err := prepareOutputs(opts); err != nil {
		return err
	}

	args := []string{
		"--background",
		"--factory-startup",
		"--python", filepath.Join(libPath, "driver.py"),
		"--",
	}
	args = append(args, DriverArgs(opts, cam)...)

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err = cmd.Start(); err != nil {
		return &job.RenderError{Err: fmt.Errorf("failed to start blender: %w", err)}
	}
	logs.Info.Printf("Blender started (PID %d)\n", cmd.Process.Pid)

	// Handle Ctrl-C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	waitCh := waitCmd(cmd)
	select {
	case <-sigCh:
		logs.Info.Println("Interrupt received, terminating Blender")
		_ = cmd.Process.Signal(syscall.SIGTERM)
		<-waitCh
		return job.ErrInterrupted
	case err = <-waitCh:
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &job.RenderError{Err: fmt.Errorf("timed out after %s", opts.Timeout)}
		}
		return mapDriverExit(err, opts)
	}

	if _, err := os.Stat(opts.RenderPath); err != nil {
		return &job.RenderError{Err: fmt.Errorf("host exited cleanly but wrote no image: %w", err)}
	}
	return nil
}

// mapDriverExit translates the driver's exit status back into the stage
// that failed inside the host.
func mapDriverExit(err error, opts *job.Options) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case driverExitImport:
			return &job.ImportError{Path: opts.FBXPath, Err: errors.New("host rejected the file")}
		case driverExitSave:
			return &job.PathError{Path: opts.SavePath, Err: errors.New("host could not save the project file")}
		}
	}
	return &job.RenderError{Err: err}
}

// prepareOutputs creates the output directories and verifies they are
// writable before the host is started, so a bad path never wastes a
// render.
func prepareOutputs(opts *job.Options) error {
	paths := []string{opts.RenderPath, opts.SavePath, opts.ThumbPath}
	for _, p := range paths {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return &job.PathError{Path: p, Err: err}
		}
		f, err := os.CreateTemp(dir, ".fbxshot-*")
		if err != nil {
			return &job.PathError{Path: p, Err: err}
		}
		name := f.Name()
		_ = f.Close()
		_ = os.Remove(name)
	}
	return nil
}

// waitCmd waits for the command to quit and notifies through a channel.
func waitCmd(c *exec.Cmd) <-chan error {
	ch := make(chan error, 1)
	go func() { ch <- c.Wait() }()
	return ch
}
