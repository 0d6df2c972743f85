// Package mission contains the pure business logic for mission operations.
// This is part of the Functional Core - no I/O, only pure functions.
package mission

import (
	"fmt"
	"strings"
)

// CreateContext carries the required fields of a creation request as they
// arrived. A nil field means the key was absent or explicitly null.
type CreateContext struct {
	Name        *string
	LaunchDate  *string
	Destination *string
	State       *string
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
// The returned error wraps ErrMissingField.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingField, r.Reason)
}

// CanCreateMission evaluates whether a creation request carries every
// required field.
// Rule: name, launch date, destination and state must be present. Empty
// strings are accepted; only absence is rejected.
func CanCreateMission(ctx CreateContext) GuardResult {
	var missing []string
	if ctx.Name == nil {
		missing = append(missing, "name")
	}
	if ctx.LaunchDate == nil {
		missing = append(missing, "launch date")
	}
	if ctx.Destination == nil {
		missing = append(missing, "destination")
	}
	if ctx.State == nil {
		missing = append(missing, "state")
	}

	if len(missing) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
		}
	}
	return GuardResult{Allowed: true}
}

// CanApplyPatch evaluates whether a patch keeps the required fields set.
// Rule: a required field may be replaced but never cleared with null.
func CanApplyPatch(p Patch) GuardResult {
	var cleared []string
	if p.Name.IsNull() {
		cleared = append(cleared, "name")
	}
	if p.LaunchDate.IsNull() {
		cleared = append(cleared, "launch date")
	}
	if p.Destination.IsNull() {
		cleared = append(cleared, "destination")
	}
	if p.State.IsNull() {
		cleared = append(cleared, "state")
	}

	if len(cleared) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("required fields cannot be null: %s", strings.Join(cleared, ", ")),
		}
	}
	return GuardResult{Allowed: true}
}
