// Package callbacks implements the per-kind observer registry for
// propagation events. The registry is constructed explicitly and injected
// into whatever dispatches events, so tests and embedders can keep isolated
// instances.
package callbacks

import (
	"github.com/hashicorp/go-hclog"

	"github.com/abhcs/bap-taint/pkg/shared"
	"github.com/abhcs/bap-taint/pkg/shared/errors"
)

// Callback receives the event for one finished propagation session. Return
// values do not exist; a callback communicates only through its own effects.
type Callback func(event shared.Event)

// Registry maps each taint kind to its ordered list of callbacks. It lives
// for the process lifetime and is never cleared automatically.
type Registry struct {
	buckets map[shared.TaintKind][]Callback
	logger  hclog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger hclog.Logger) *Registry {
	return &Registry{
		buckets: map[shared.TaintKind][]Callback{
			shared.TaintPointer:  nil,
			shared.TaintRegister: nil,
		},
		logger: logger,
	}
}

// Install registers the callback for both taint kinds, as two independent
// registrations.
func (r *Registry) Install(callback Callback) {
	r.buckets[shared.TaintPointer] = append(r.buckets[shared.TaintPointer], callback)
	r.buckets[shared.TaintRegister] = append(r.buckets[shared.TaintRegister], callback)
}

// InstallFor registers the callback for one taint kind. An invalid kind
// fails fast and leaves the registry unchanged.
func (r *Registry) InstallFor(callback Callback, kind shared.TaintKind) error {
	if !kind.Valid() {
		return errors.NewInvalidKindError(string(kind))
	}
	r.buckets[kind] = append(r.buckets[kind], callback)
	return nil
}

// Installed returns how many callbacks are registered for the kind.
func (r *Registry) Installed(kind shared.TaintKind) int {
	return len(r.buckets[kind])
}

// Dispatch invokes every callback registered for the kind, in registration
// order. Each invocation is isolated: a panicking callback is logged and the
// remaining callbacks still run. Callbacks must not mutate the registry
// during dispatch.
func (r *Registry) Dispatch(kind shared.TaintKind, event shared.Event) {
	for i, callback := range r.buckets[kind] {
		r.invoke(i, callback, event)
	}
}

func (r *Registry) invoke(i int, callback Callback, event shared.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("propagation callback panicked",
				"kind", event.Kind, "index", i, "panic", rec)
		}
	}()
	callback(event)
}
