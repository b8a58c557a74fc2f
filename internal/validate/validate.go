// Package validate rejects structurally invalid journal submissions
// before they reach the network. Checks accumulate field-level issues
// rather than stopping at the first failure; the only exception is the
// entry-plan-count check, which aborts the remaining scale-plan checks
// because a missing or ambiguous entry plan invalidates the downstream
// price comparisons.
package validate

import (
	"fmt"
	"strings"
)

// Issue is a single field-level validation failure. Path is a dotted
// field path in the submission, e.g. "scalePlans[2].qty".
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Issues is the collected result of validating a submission.
type Issues []Issue

// Valid reports whether the submission passed every check.
func (is Issues) Valid() bool {
	return len(is) == 0
}

// Summary joins all issues into a single human-readable line.
func (is Issues) Summary() string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, "; ")
}

// ForPath returns the messages attached to a specific field path.
func (is Issues) ForPath(path string) []string {
	var msgs []string
	for _, i := range is {
		if i.Path == path {
			msgs = append(msgs, i.Message)
		}
	}
	return msgs
}

func planPath(idx int, field string) string {
	return fmt.Sprintf("scalePlans[%d].%s", idx, field)
}
