package domain

import "errors"

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidID         = errors.New("invalid document id")
)
