package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get cached result")
	ErrFailedToSet    = errors.New("failed to cache result")
	ErrFailedToDecode = errors.New("failed to decode cached result")
)
