package ui

import "github.com/vango-dev/dataviewer/internal/errors"

// Error kinds. Match with errors.Is.
var (
	ErrInvalidArgument = errors.KindInvalidArgument
	ErrResourceMissing = errors.KindResourceMissing
	ErrConsistency     = errors.KindConsistency
	ErrDuplicateID     = errors.KindDuplicateID
	ErrNotImplemented  = errors.KindNotImplemented
)
