package session

import (
	"fmt"
	"io"
	"os"
)

// ColorRule maps a term predicate to the color painted on matching
// instructions.
type ColorRule struct {
	Predicate string
	Color     string
}

// colorScheme is the fixed rule sequence handed to the engine's map-terms
// pass. Order is part of the contract: unvisited stays gray, visited turns
// white, tainted turns red, and the taint source itself turns yellow.
var colorScheme = []ColorRule{
	{"true", "gray"},
	{"is-visited", "white"},
	{"has-taints", "red"},
	{"taints", "yellow"},
}

// Scheme returns a copy of the fixed color-mapping rules.
func Scheme() []ColorRule {
	rules := make([]ColorRule, len(colorScheme))
	copy(rules, colorScheme)
	return rules
}

// WriteScheme emits the rules in declaration order, one s-expression per
// line, in the syntax the map-terms pass consumes.
func WriteScheme(w io.Writer) error {
	for _, rule := range colorScheme {
		if _, err := fmt.Fprintf(w, "((%s) (color %s))\n", rule.Predicate, rule.Color); err != nil {
			return err
		}
	}
	return nil
}

// writeScheme writes the scheme file and closes it before the engine is ever
// invoked.
func writeScheme(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	if err := WriteScheme(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
