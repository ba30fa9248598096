package logic

import (
	"errors"
	"fmt"
)

// CooldownError rejects a request arriving inside the per-user cooldown
// window; Remaining is the wait in whole seconds.
type CooldownError struct {
	Remaining int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, retry in %d seconds", e.Remaining)
}

var (
	// ErrBlocked means the prompt or negative prompt hit the keyword filter.
	ErrBlocked = errors.New("prompt blocked by keyword filter")
	// ErrEmptyResult means the provider answered but produced nothing usable.
	ErrEmptyResult = errors.New("provider returned no artifacts")
	// ErrBusy means no generation permit became available in time.
	ErrBusy = errors.New("all generation slots are busy")
)
