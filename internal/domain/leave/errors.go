package leave

import "errors"

var (
	ErrRecordNotFound = errors.New("leave record not found")
)
