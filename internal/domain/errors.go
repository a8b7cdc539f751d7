package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("sign in required")
	ErrUnauthorized       = errors.New("not allowed to act on this record")
	ErrInvalidHospital    = errors.New("invalid hospital ID")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrDuplicateHospital  = errors.New("hospital ID already registered")
	ErrInvalidPhoneFormat = errors.New("phone number must be exactly 10 digits")
	ErrCredentialMismatch = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("request has already been decided")
	ErrStorageFailure     = errors.New("storage failure")
)
