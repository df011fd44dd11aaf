package callbacks

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/abhcs/bap-taint/pkg/shared"
	sharederrors "github.com/abhcs/bap-taint/pkg/shared/errors"
)

func newTestRegistry() *Registry {
	return NewRegistry(hclog.NewNullLogger())
}

func TestInstallBothKinds(t *testing.T) {
	registry := newTestRegistry()

	var events []shared.Event
	registry.Install(func(event shared.Event) {
		events = append(events, event)
	})

	registry.Dispatch(shared.TaintPointer, shared.Event{Address: 0x401000, Kind: shared.TaintPointer})
	registry.Dispatch(shared.TaintRegister, shared.Event{Address: 0x401000, Kind: shared.TaintRegister})

	assert.Len(t, events, 2, "callback should run once per dispatch")
	assert.Equal(t, shared.TaintPointer, events[0].Kind)
	assert.Equal(t, shared.TaintRegister, events[1].Kind)
}

func TestInstallForSingleKind(t *testing.T) {
	registry := newTestRegistry()

	calls := 0
	err := registry.InstallFor(func(shared.Event) { calls++ }, shared.TaintRegister)
	assert.NoError(t, err)

	registry.Dispatch(shared.TaintPointer, shared.Event{Kind: shared.TaintPointer})
	assert.Equal(t, 0, calls, "pointer dispatch must not reach a register-only callback")

	registry.Dispatch(shared.TaintRegister, shared.Event{Kind: shared.TaintRegister})
	assert.Equal(t, 1, calls)
}

func TestInstallForInvalidKind(t *testing.T) {
	registry := newTestRegistry()

	err := registry.InstallFor(func(shared.Event) {}, shared.TaintKind("bogus"))
	assert.Error(t, err)
	var invalidKind *sharederrors.InvalidKindError
	assert.ErrorAs(t, err, &invalidKind)

	// Neither bucket may have gained the callback.
	assert.Equal(t, 0, registry.Installed(shared.TaintPointer))
	assert.Equal(t, 0, registry.Installed(shared.TaintRegister))
}

func TestDispatchOrderAndIsolation(t *testing.T) {
	registry := newTestRegistry()

	var order []int
	assert.NoError(t, registry.InstallFor(func(shared.Event) { order = append(order, 1) }, shared.TaintRegister))
	assert.NoError(t, registry.InstallFor(func(shared.Event) { panic("observer blew up") }, shared.TaintRegister))
	assert.NoError(t, registry.InstallFor(func(shared.Event) { order = append(order, 3) }, shared.TaintRegister))

	registry.Dispatch(shared.TaintRegister, shared.Event{Kind: shared.TaintRegister})

	assert.Equal(t, []int{1, 3}, order, "a panicking callback must not stop later callbacks")
}

func TestDispatchWithNoCallbacks(t *testing.T) {
	registry := newTestRegistry()
	registry.Dispatch(shared.TaintPointer, shared.Event{Kind: shared.TaintPointer})
}
