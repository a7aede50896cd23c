package manager

import "errors"

var (
	ErrNilSource = errors.New("nil inventory source")
)
