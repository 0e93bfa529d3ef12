package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidOTP         = errors.New("invalid or expired code")
)

// Domain errors
var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidPrice = errors.New("invalid price")
	ErrInvalidMedia = errors.New("invalid media reference")
)

// MapPgError translates low-level postgres errors into domain sentinels
func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return ErrNotFound
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return errors.Is(err, ErrConflict)
}

// IsNotFound reports whether err represents a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// GetUserMessage returns a message safe to show to API consumers
func GetUserMessage(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return "A record with these details already exists"
	case errors.Is(err, ErrNotFound):
		return "The requested resource was not found"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken):
		return "Your session is invalid or has expired"
	case errors.Is(err, ErrEmailNotVerified):
		return "Please verify your email address first"
	case errors.Is(err, ErrInvalidOTP):
		return "The verification code is invalid or has expired"
	case errors.Is(err, ErrForbidden):
		return "You do not have access to this resource"
	case errors.Is(err, ErrInvalidPrice):
		return "The price could not be parsed"
	case errors.Is(err, ErrInvalidMedia):
		return "The media reference could not be understood"
	default:
		return "Something went wrong"
	}
}

// GetDetailForLogging returns the full error chain for structured logs
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
