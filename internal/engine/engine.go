// Package engine models the two external analysis strategies as variants.
// Each variant knows its propagation pass and the extra arguments it needs,
// so supporting another engine means adding one implementation here.
package engine

import "fmt"

// Env carries the session values an engine may reference from its extra
// arguments.
type Env struct {
	// EntryPoint is the function simulation starts from.
	EntryPoint string
	// MaxLength bounds the simulated trace length.
	MaxLength int
	// MaxVisited bounds how many times a block may be revisited.
	MaxVisited int
	// StdinPath and StdoutPath back the engine's symbolic IO channels.
	StdinPath  string
	StdoutPath string
}

// Engine is one of the selectable analysis strategies.
type Engine interface {
	// Name is the user-facing identifier, as answered at the prompt.
	Name() string
	// PropagatePass is the pass that performs the actual propagation.
	PropagatePass() string
	// ContributeArgs returns the engine-specific command-line arguments.
	ContributeArgs(env Env) []string
}

// Primus runs a bounded symbolic/concrete simulation.
var Primus Engine = primus{}

// Legacy runs the direct static propagation pass.
var Legacy Engine = legacy{}

// Parse maps a prompt answer to an engine. Empty and unrecognized answers
// fall back to Primus; a missing answer is a usability case, not an error.
func Parse(name string) Engine {
	if name == Legacy.Name() {
		return Legacy
	}
	return Primus
}

type primus struct{}

func (primus) Name() string { return "primus" }

func (primus) PropagatePass() string { return "run" }

func (primus) ContributeArgs(env Env) []string {
	return []string{
		fmt.Sprintf("--run-entry-points=%s", env.EntryPoint),
		fmt.Sprintf("--primus-limit-max-length=%d", env.MaxLength),
		fmt.Sprintf("--primus-limit-max-visited=%d", env.MaxVisited),
		"--primus-promiscuous-mode",
		"--primus-greedy-scheduler",
		"--primus-propagate-taint-from-attributes",
		"--primus-propagate-taint-to-attributes",
		fmt.Sprintf("--primus-lisp-channel-redirect=<stdin>:%s,<stdout>:%s",
			env.StdinPath,
			env.StdoutPath),
	}
}

type legacy struct{}

func (legacy) Name() string { return "legacy" }

func (legacy) PropagatePass() string { return "propagate-taint" }

func (legacy) ContributeArgs(Env) []string { return nil }
