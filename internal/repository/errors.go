package repository

import "errors"

// The storage layer reports exactly three failure kinds. Callers never see
// raw driver errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrStorage   = errors.New("storage fault")
)
