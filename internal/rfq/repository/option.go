package repository

import "rfq-agent/internal/model"

// GetResultOptions identifies a cached result.
type GetResultOptions struct {
	Key string
}

// SetResultOptions holds a result to cache under Key.
type SetResultOptions struct {
	Key    string
	Result model.RfqResult
}
