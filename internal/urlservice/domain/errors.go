package domain

import "errors"

var (
	ErrInvalidURL             = errors.New("invalid url")
	ErrInvalidShortcodeFormat = errors.New("invalid shortcode format")
	ErrShortcodeCollision     = errors.New("shortcode already in use")
	ErrShortcodeNotFound      = errors.New("shortcode not found")
	ErrShortcodeExpired       = errors.New("shortcode expired")
	ErrCodeSpaceExhausted     = errors.New("short code generation failed after max retries")
)
