package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")
	ErrStorage      = errors.New("storage failure")

	// ErrInvalidFileType also matches ErrInvalidInput.
	ErrInvalidFileType = fmt.Errorf("%w: invalid file type", ErrInvalidInput)
)
