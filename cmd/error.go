package cmd

import "errors"

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
)
