package domain

import "errors"

// ErrInvalidRecord signals a record missing mandatory fields.
var ErrInvalidRecord = errors.New("invalid record")
