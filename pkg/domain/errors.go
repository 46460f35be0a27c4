package domain

import "errors"

// ErrUnauthorized is returned when a request carries no usable caller identity.
var ErrUnauthorized = errors.New("unauthorized")
