package composer

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrInvalidRule    = errors.New("invalid rule")
	ErrInvalidMatch   = errors.New("invalid match")
	ErrUnknownDynamic = errors.New("unknown dynamic responder")
)
