package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// HasFlags reports whether any flag in the set was changed on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) {
		changed = true
	})
	return changed
}

// FormatAddress renders an instruction address the way the engine expects it
// on the command line.
func FormatAddress(addr uint64) string {
	return fmt.Sprintf("0x%X", addr)
}

// ParseAddress accepts addresses as typed by users: with or without the 0x
// prefix, any case.
func ParseAddress(s string) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return 0, fmt.Errorf("empty address")
	}
	addr, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return addr, nil
}
