// Package session turns a user-initiated taint request into an engine
// invocation and applies the engine's results when it finishes.
package session

import (
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/abhcs/bap-taint/internal/callbacks"
	"github.com/abhcs/bap-taint/internal/engine"
	"github.com/abhcs/bap-taint/internal/host"
	"github.com/abhcs/bap-taint/pkg/shared"
	"github.com/abhcs/bap-taint/pkg/shared/artifacts"
	"github.com/abhcs/bap-taint/pkg/shared/errors"
)

// Parameters is the fully resolved input of one session. Immutable once
// constructed by Resolve.
type Parameters struct {
	Engine       engine.Engine
	MaxLength    int
	MaxVisited   int
	Address      uint64
	Kind         shared.TaintKind
	FunctionName string
}

// Descriptor is the immutable engine invocation: the exact argument tokens,
// in order, handed to the process runner.
type Descriptor struct {
	Args []string
}

// String renders the descriptor the way it would appear on a command line.
func (d Descriptor) String() string {
	return strings.Join(d.Args, " ")
}

// Builder constructs sessions. One builder can build any number of
// independent sessions; each session owns its own artifacts.
type Builder struct {
	tempDir string
	logger  hclog.Logger
}

// NewBuilder creates a session builder allocating artifacts under tempDir
// (os.TempDir when empty).
func NewBuilder(tempDir string, logger hclog.Logger) *Builder {
	return &Builder{
		tempDir: tempDir,
		logger:  logger,
	}
}

// Build allocates the session's artifacts, writes the color scheme, and
// assembles the invocation descriptor. On failure nothing is leaked and no
// partial invocation exists.
func (b *Builder) Build(params Parameters) (*Session, error) {
	if !params.Kind.Valid() {
		return nil, errors.NewInvalidKindError(string(params.Kind))
	}

	arts, err := artifacts.NewSet(b.tempDir, b.logger)
	if err != nil {
		return nil, err
	}

	if err := writeScheme(arts.Path(artifacts.ColorScheme)); err != nil {
		arts.Release()
		return nil, errors.NewArtifactError(string(artifacts.ColorScheme), err)
	}

	passes := []string{"taint", params.Engine.PropagatePass(), "map-terms", "emit-ida-script"}
	args := []string{
		params.Kind.QualifierFlag(), shared.FormatAddress(params.Address),
		"--passes", strings.Join(passes, ","),
		"--map-terms-using", arts.Path(artifacts.ColorScheme),
		"--emit-ida-script-attr", "color",
		"--emit-ida-script-file", arts.Path(artifacts.GeneratedScript),
	}
	args = append(args, params.Engine.ContributeArgs(engine.Env{
		EntryPoint: params.FunctionName,
		MaxLength:  params.MaxLength,
		MaxVisited: params.MaxVisited,
		StdinPath:  arts.Path(artifacts.StdinChannel),
		StdoutPath: arts.Path(artifacts.StdoutChannel),
	})...)

	b.logger.Debug("session built",
		"kind", params.Kind,
		"address", shared.FormatAddress(params.Address),
		"engine", params.Engine.Name())

	return &Session{
		params: params,
		desc:   Descriptor{Args: args},
		arts:   arts,
		logger: b.logger,
	}, nil
}

// Session is one in-flight propagation run: resolved parameters, the
// invocation descriptor, and ownership of the temporary artifacts.
type Session struct {
	params Parameters
	desc   Descriptor
	arts   *artifacts.Set
	logger hclog.Logger
	once   sync.Once
}

// Parameters returns the session's resolved parameters.
func (s *Session) Parameters() Parameters {
	return s.params
}

// Descriptor returns the immutable invocation descriptor.
func (s *Session) Descriptor() Descriptor {
	return s.desc
}

// Artifacts exposes the session's artifact set.
func (s *Session) Artifacts() *artifacts.Set {
	return s.arts
}

// Finish is the completion handler: it applies the generated script to the
// host, refreshes the view, notifies observers for the session's kind, and
// releases the artifacts. It runs at most once per session; completion being
// signaled at all is taken as success, a missing or failing script is logged
// and never suppresses the refresh or the callbacks.
func (s *Session) Finish(h host.Host, registry *callbacks.Registry) {
	s.once.Do(func() {
		defer s.arts.Release()

		if err := h.RunScript(s.arts.Path(artifacts.GeneratedScript)); err != nil {
			s.logger.Error("failed to apply generated script", "error", err)
		}
		h.RefreshView()

		registry.Dispatch(s.params.Kind, shared.Event{
			Address: s.params.Address,
			Kind:    s.params.Kind,
		})

		// Some hosts route script execution and explicit refresh through
		// independent paths; refresh again so both are covered.
		h.RefreshView()
	})
}
