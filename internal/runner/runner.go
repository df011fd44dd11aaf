// Package runner launches the external engine process and reports its
// completion. The core has no visibility into the engine beyond the exit:
// completion is signaled exactly once per launch, and an engine that never
// exits simply never signals.
package runner

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/hashicorp/go-hclog"

	"github.com/abhcs/bap-taint/pkg/shared/errors"
)

// Runner invokes the engine binary.
type Runner struct {
	binary string
	logger hclog.Logger
}

// New creates a runner for the given engine binary ("bap" when empty).
func New(binary string, logger hclog.Logger) *Runner {
	if binary == "" {
		binary = "bap"
	}
	return &Runner{
		binary: binary,
		logger: logger,
	}
}

// Launch starts the engine with the given arguments and returns as soon as
// the process is running. When the process exits, onFinish is invoked once
// from a separate goroutine with the process error, if any. A process that
// failed to even start reports through the returned error instead and
// onFinish never fires.
func (r *Runner) Launch(ctx context.Context, args []string, onFinish func(err error)) error {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	r.logger.Info("launching engine", "binary", r.binary)
	r.logger.Debug("engine invocation", "args", args)

	if err := cmd.Start(); err != nil {
		return errors.NewCommandError(err, -1)
	}

	go func() {
		err := cmd.Wait()
		if err != nil {
			r.logger.Warn("engine exited with error", "error", err, "output", output.String())
		} else {
			r.logger.Info("engine finished")
			r.logger.Debug("engine output", "output", output.String())
		}
		onFinish(err)
	}()

	return nil
}
