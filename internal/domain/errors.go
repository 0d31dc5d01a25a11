package domain

import "errors"

// ErrNoTargets is returned when a run has nothing to operate on.
var ErrNoTargets = errors.New("nothing to process")
