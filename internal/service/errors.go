package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenInvalid        = errors.New("token is expired or invalid")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
