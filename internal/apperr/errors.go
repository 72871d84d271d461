package apperr

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrStoreRead  = errors.New("content store read failed")
	ErrStoreWrite = errors.New("content store write failed")
)
