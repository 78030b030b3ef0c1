package report

import "errors"

var (
	ErrInvalidDate = errors.New("report date must be YYYY-MM-DD")
)
