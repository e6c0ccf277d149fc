package auth

import "errors"

var (
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrManagerRoleRequired = errors.New("manager role required")
)
