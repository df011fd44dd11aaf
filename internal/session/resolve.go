package session

import (
	"github.com/hashicorp/go-hclog"

	"github.com/abhcs/bap-taint/internal/engine"
	"github.com/abhcs/bap-taint/internal/host"
	"github.com/abhcs/bap-taint/pkg/shared"
	"github.com/abhcs/bap-taint/pkg/shared/config"
)

const (
	// DefaultMaxLength bounds the simulated trace when the user gives no
	// answer.
	DefaultMaxLength = 4096
	// DefaultMaxVisited is never prompted for: two questions are enough of
	// an interruption, the loop bound keeps its default.
	DefaultMaxVisited = 64
)

const (
	askEngine = "What engine would you like, primus or legacy?"
	askDepth  = "For how many RTL instructions to propagate?"
)

// Prompter asks the user for a value. Implementations return the provided
// default when the user gives no answer; any error is treated the same as no
// answer.
type Prompter interface {
	AskString(question, defaultValue string) (string, error)
	AskInt(question string, defaultValue int) (int, error)
}

// Resolve produces the immutable parameters for one session. Missing or
// cancelled answers silently fall back to the defaults; the host's input
// watchdog stays disabled for however long the user takes and is re-armed on
// every return path.
func Resolve(h host.Host, prompter Prompter, addr uint64, kind shared.TaintKind, defaults Defaults, logger hclog.Logger) Parameters {
	h.DisableTimeout()
	defer h.RestoreTimeout()

	defaults = defaults.withFallbacks()

	answer, err := prompter.AskString(askEngine, defaults.Engine)
	if err != nil || answer == "" {
		answer = defaults.Engine
	}
	eng := engine.Parse(answer)

	maxLength, err := prompter.AskInt(askDepth, defaults.MaxLength)
	if err != nil || maxLength <= 0 {
		maxLength = defaults.MaxLength
	}

	// Only Primus needs an entry point; a failed lookup degrades to an
	// empty name rather than aborting the session.
	name, err := h.FunctionName(addr)
	if err != nil {
		logger.Warn("could not resolve function name", "address", shared.FormatAddress(addr), "error", err)
		name = ""
	}

	return Parameters{
		Engine:       eng,
		MaxLength:    maxLength,
		MaxVisited:   defaults.MaxVisited,
		Address:      addr,
		Kind:         kind,
		FunctionName: name,
	}
}

// Defaults seeds the prompts; zero values mean the built-in defaults.
type Defaults struct {
	Engine     string
	MaxLength  int
	MaxVisited int
}

func (d Defaults) withFallbacks() Defaults {
	d.Engine = config.SetThen(d.Engine, engine.Primus.Name())
	d.MaxLength = config.SetThen(d.MaxLength, DefaultMaxLength)
	d.MaxVisited = config.SetThen(d.MaxVisited, DefaultMaxVisited)
	return d
}
