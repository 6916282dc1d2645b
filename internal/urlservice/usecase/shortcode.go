package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go-shortlink/internal/urlservice/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphanumeric, case-sensitive: 62 symbols
	shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	GeneratedCodeLength = 6
	MinCustomCodeLength = 4
	MaxCustomCodeLength = 10

	maxURLLength = 2048
)

var customCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// GenerateShortCode returns a random code drawn uniformly from the 62-symbol alphabet.
func GenerateShortCode() (string, error) {
	return gonanoid.Generate(shortCodeAlphabet, GeneratedCodeLength)
}

// ValidateShortCode checks a caller-supplied code.
func ValidateShortCode(code string) error {
	err := validation.Validate(code,
		validation.Required.Error("shortcode is required"),
		validation.Length(MinCustomCodeLength, MaxCustomCodeLength).
			Error(fmt.Sprintf("shortcode must be %d-%d characters", MinCustomCodeLength, MaxCustomCodeLength)),
		validation.Match(customCodeRegex).Error("shortcode must be alphanumeric"),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidShortcodeFormat, err)
	}
	return nil
}

// validateURL accepts absolute http(s) URLs with a host.
func validateURL(rawURL string) error {
	err := validation.Validate(rawURL,
		validation.Required.Error("url is required"),
		validation.Length(0, maxURLLength).
			Error(fmt.Sprintf("url exceeds maximum length of %d characters", maxURLLength)),
		is.RequestURL.Error("invalid url format"),
	)
	if err != nil {
		return err
	}

	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url format: %w", err)
	}

	scheme := strings.ToLower(parsedURL.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("url must have a host")
	}

	return nil
}
