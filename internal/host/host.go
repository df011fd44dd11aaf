// Package host abstracts the disassembler environment a propagation session
// runs against. The session core only needs the capability set below; the
// live disassembler, a test double, and the headless CLI host all satisfy it.
package host

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// Host is the disassembler-side collaborator.
type Host interface {
	// CurrentAddress returns the address under the user's cursor.
	CurrentAddress() (uint64, error)
	// FunctionName resolves the function containing addr.
	FunctionName(addr uint64) (string, error)
	// RunScript executes a generated script against the live model.
	RunScript(path string) error
	// RefreshView redraws the disassembly view.
	RefreshView()
	// DisableTimeout suspends the host's input watchdog while the user
	// answers prompts. RestoreTimeout re-arms it; the pair must bracket
	// parameter resolution on every path.
	DisableTimeout()
	RestoreTimeout()
}

// Headless is the host used by the standalone CLI: the cursor and function
// come from flags, scripts run through a configured interpreter, and the
// view operations are logged no-ops.
type Headless struct {
	Address     uint64
	Function    string
	Interpreter []string
	Logger      hclog.Logger
}

func (h *Headless) CurrentAddress() (uint64, error) {
	if h.Address == 0 {
		return 0, fmt.Errorf("no cursor address: pass --addr")
	}
	return h.Address, nil
}

func (h *Headless) FunctionName(addr uint64) (string, error) {
	if h.Function == "" {
		return "", fmt.Errorf("no function known for %#x: pass --func", addr)
	}
	return h.Function, nil
}

// RunScript executes the generated script with the configured interpreter.
func (h *Headless) RunScript(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("generated script unavailable: %w", err)
	}
	if len(h.Interpreter) == 0 {
		h.Logger.Info("no script interpreter configured, skipping script execution", "path", path)
		return nil
	}

	args := append(h.Interpreter[1:], path)
	cmd := exec.Command(h.Interpreter[0], args...)
	cmd.Stdout = h.Logger.StandardWriter(&hclog.StandardLoggerOptions{ForceLevel: hclog.Debug})
	cmd.Stderr = h.Logger.StandardWriter(&hclog.StandardLoggerOptions{ForceLevel: hclog.Warn})
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("script execution failed: %w", err)
	}
	return nil
}

func (h *Headless) RefreshView() {
	h.Logger.Debug("view refresh requested")
}

// DisableTimeout and RestoreTimeout are no-ops: the CLI has no input watchdog.
func (h *Headless) DisableTimeout() {}

func (h *Headless) RestoreTimeout() {}
