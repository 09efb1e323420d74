package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFixture means a built-in literal breaks its own invariants.
	ErrInvalidFixture = errors.New("invalid fixture")

	ErrUnknownFixture = errors.New("unknown fixture")
)

// InvalidFixtureError names the offending fixture and carries the cause.
type InvalidFixtureError struct {
	Fixture string
	Err     error
}

func (e *InvalidFixtureError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrInvalidFixture.Error(), e.Fixture)
	}
	return fmt.Sprintf("%s: %s: %v", ErrInvalidFixture.Error(), e.Fixture, e.Err)
}

func (e *InvalidFixtureError) Is(target error) bool { return target == ErrInvalidFixture }

func (e *InvalidFixtureError) Unwrap() error { return e.Err }
