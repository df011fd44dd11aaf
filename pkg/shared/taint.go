package shared

import "fmt"

// TaintKind selects what gets tainted at the chosen address: the value held
// in a register operand, or the memory the operand points to.
type TaintKind string

const (
	TaintPointer  TaintKind = "ptr"
	TaintRegister TaintKind = "reg"
)

// Valid reports whether the kind is one of the two supported taint sources.
func (k TaintKind) Valid() bool {
	return k == TaintPointer || k == TaintRegister
}

// QualifierFlag returns the address-qualifier flag the engine expects for
// this kind of taint source.
func (k TaintKind) QualifierFlag() string {
	return fmt.Sprintf("--taint-%s", string(k))
}

// Event is the notification payload delivered to observers after a
// propagation session completes.
type Event struct {
	// Address is the instruction address the user propagated taint from.
	Address uint64
	// Kind is the taint source kind selected by the user.
	Kind TaintKind
}
