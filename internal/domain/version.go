package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultVersionLabel is assigned to templates created without an explicit
// version label.
const DefaultVersionLabel = "1.0"

// NextVersionLabel mechanically increments a "<major>.<minor>" version
// label by bumping the major component and resetting minor to zero:
// "1.0" → "2.0", "2.3" → "3.0". A bare integer label is treated the same
// way ("3" → "4.0"). Labels that do not start with an integer get ".1"
// appended so forked versions always differ from their ancestor.
func NextVersionLabel(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return DefaultVersionLabel
	}

	majorPart := trimmed
	if idx := strings.Index(trimmed, "."); idx >= 0 {
		majorPart = trimmed[:idx]
	}
	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return trimmed + ".1"
	}
	return fmt.Sprintf("%d.0", major+1)
}
