package rfq

import "errors"

var (
	ErrInvalidQuery = errors.New("query is required")
	ErrInternal     = errors.New("failed to process request")
)
