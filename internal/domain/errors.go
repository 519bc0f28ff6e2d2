package domain

import "errors"

// ErrUnknownValue indicates an enum string that does not name any variant.
var ErrUnknownValue = errors.New("unknown value")
