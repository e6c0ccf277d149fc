package shift

import "errors"

// Shift domain errors
var (
	ErrRuleNotFound       = errors.New("shift rule not found")
	ErrNoDefaultRule      = errors.New("company has no default shift rule")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
)
