package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrNegativeLeadTime    = errors.New("negative lead time")
	ErrMissingExpectedDate = errors.New("missing expected date")
)
