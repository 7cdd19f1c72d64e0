package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validator error, so callers can
	// match both the category and the specific rule.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrPasswordHashing     = errors.New("error hashing password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
