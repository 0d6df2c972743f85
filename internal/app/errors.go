package app

import (
	"errors"

	coremission "github.com/example/expedicoes/internal/core/mission"
)

// Sentinel kinds returned by the services. Adapters map them to transport
// status codes with errors.Is.
var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrMissingField    = coremission.ErrMissingField
	ErrInvalidDate     = coremission.ErrInvalidDate
)
