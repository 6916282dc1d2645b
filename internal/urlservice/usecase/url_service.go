package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"go-shortlink/internal/eventlog"
	"go-shortlink/internal/urlservice/domain"

	"go.uber.org/zap"
)

const (
	DefaultValidityMinutes = 30

	// DefaultMaxGenerateAttempts caps the collision retry loop for generated
	// codes. With 62^6 codes it is only reachable when the space is nearly full.
	DefaultMaxGenerateAttempts = 1_000_000

	DirectReferrer = "direct"
	UnknownGeo     = "unknown"
)

// maxValidity keeps now+validity inside time.Duration's range.
const maxValidity = time.Duration(math.MaxInt64)

// URLService owns the shortcode lifecycle: creation, redirect resolution
// with click recording, and statistics.
type URLService struct {
	repo        URLRepository
	diag        DiagnosticLogger
	geo         GeoResolver
	logger      *zap.Logger
	now         func() time.Time
	generate    func() (string, error)
	maxAttempts int
	validity    time.Duration
}

// Option configures a URLService
type Option func(*URLService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *URLService) {
		s.now = now
	}
}

// WithCodeGenerator replaces the random code generator.
func WithCodeGenerator(generate func() (string, error)) Option {
	return func(s *URLService) {
		s.generate = generate
	}
}

// WithMaxGenerateAttempts overrides DefaultMaxGenerateAttempts.
func WithMaxGenerateAttempts(n int) Option {
	return func(s *URLService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithDefaultValidity sets the validity applied when the caller gives none.
func WithDefaultValidity(minutes float64) Option {
	return func(s *URLService) {
		if d, ok := minutesToDuration(minutes); ok {
			s.validity = d
		}
	}
}

// NewURLService creates a new URL service
func NewURLService(repo URLRepository, diag DiagnosticLogger, geo GeoResolver, logger *zap.Logger, opts ...Option) *URLService {
	s := &URLService{
		repo:        repo,
		diag:        diag,
		geo:         geo,
		logger:      logger,
		now:         time.Now,
		generate:    GenerateShortCode,
		maxAttempts: DefaultMaxGenerateAttempts,
		validity:    DefaultValidityMinutes * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateParams is the input of Create.
type CreateParams struct {
	URL string
	// Validity in minutes. Only positive numbers are honoured; anything
	// else, including nil, selects the default.
	Validity any
	// ShortCode requested by the caller. Empty means generate one.
	ShortCode string
}

// Visit describes the client behind a redirect.
type Visit struct {
	Referrer string
	ClientIP string
}

// Create validates the input and registers a new link.
func (s *URLService) Create(ctx context.Context, params CreateParams) (*domain.Link, error) {
	if err := validateURL(params.URL); err != nil {
		s.emit(eventlog.LevelError, fmt.Sprintf("Invalid or missing URL in request body: %q", params.URL))
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}

	validity := s.validity
	if d, ok := validityDuration(params.Validity); ok {
		validity = d
	}

	now := s.now()
	link := &domain.Link{
		OriginalURL: params.URL,
		CreatedAt:   now,
		ExpiresAt:   now.Add(validity),
		Clicks:      []domain.Click{},
	}

	if params.ShortCode != "" {
		if err := ValidateShortCode(params.ShortCode); err != nil {
			s.emit(eventlog.LevelError, fmt.Sprintf("Invalid shortcode format provided: %s", params.ShortCode))
			return nil, err
		}

		link.ShortCode = params.ShortCode
		if err := s.repo.Insert(ctx, link); err != nil {
			if errors.Is(err, domain.ErrShortcodeCollision) {
				s.emit(eventlog.LevelWarn, fmt.Sprintf("Shortcode collision attempt: %s", params.ShortCode))
				return nil, fmt.Errorf("%w: %s", domain.ErrShortcodeCollision, params.ShortCode)
			}
			s.unexpected(err)
			return nil, err
		}
	} else if err := s.insertGenerated(ctx, link); err != nil {
		s.unexpected(err)
		return nil, err
	}

	s.emit(eventlog.LevelInfo, fmt.Sprintf("Short URL created: %s for URL: %s", link.ShortCode, link.OriginalURL))
	return link, nil
}

// insertGenerated draws random codes until one is free.
func (s *URLService) insertGenerated(ctx context.Context, link *domain.Link) error {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		code, err := s.generate()
		if err != nil {
			return fmt.Errorf("failed to generate short code: %w", err)
		}

		link.ShortCode = code
		err = s.repo.Insert(ctx, link)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrShortcodeCollision) {
			return err
		}
	}

	link.ShortCode = ""
	return domain.ErrCodeSpaceExhausted
}

// Resolve returns the target of code and records the click. Expired links
// are not redirected and get no click.
func (s *URLService) Resolve(ctx context.Context, code string, visit Visit) (string, error) {
	click := domain.Click{
		Referrer: visit.Referrer,
		Geo:      s.geo.ResolveCountry(visit.ClientIP),
	}
	if click.Referrer == "" {
		click.Referrer = DirectReferrer
	}
	if click.Geo == "" {
		click.Geo = UnknownGeo
	}

	var target string
	err := s.repo.Update(ctx, code, func(link *domain.Link) error {
		now := s.now()
		if link.IsExpired(now) {
			return domain.ErrShortcodeExpired
		}
		click.Timestamp = now
		link.Clicks = append(link.Clicks, click)
		target = link.OriginalURL
		return nil
	})

	switch {
	case err == nil:
		s.emit(eventlog.LevelInfo, fmt.Sprintf("Redirecting shortcode: %s to URL: %s", code, target))
		return target, nil
	case errors.Is(err, domain.ErrShortcodeNotFound):
		s.emit(eventlog.LevelError, fmt.Sprintf("Attempted redirect on non-existent shortcode: %s", code))
	case errors.Is(err, domain.ErrShortcodeExpired):
		s.emit(eventlog.LevelWarn, fmt.Sprintf("Attempted redirect on expired shortcode: %s", code))
	default:
		s.emit(eventlog.LevelError, fmt.Sprintf("Redirect failed for shortcode %s: %v", code, err))
	}
	return "", err
}

// Stats returns a snapshot of the link. Expired links are still reported.
func (s *URLService) Stats(ctx context.Context, code string) (*domain.Link, error) {
	return s.repo.FindByShortCode(ctx, code)
}

// Count returns the number of stored links, expired ones included.
func (s *URLService) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}

func (s *URLService) unexpected(err error) {
	s.logger.Error("unexpected error in short URL creation", zap.Error(err))
	s.emit(eventlog.LevelFatal, fmt.Sprintf("Unexpected error in short URL creation: %v", err))
}

// emit forwards one diagnostic event. Failures are logged locally and
// otherwise ignored.
func (s *URLService) emit(level, message string) {
	if s.diag == nil {
		return
	}
	if err := s.diag.Submit(eventlog.StackBackend, level, eventlog.PackageService, message); err != nil {
		s.logger.Warn("failed to submit diagnostic event",
			zap.String("level", level),
			zap.Error(err),
		)
	}
}

// validityDuration converts a caller-supplied validity into a duration.
// ok is false when v is not a positive number.
func validityDuration(v any) (time.Duration, bool) {
	var minutes float64
	switch n := v.(type) {
	case float64:
		minutes = n
	case float32:
		minutes = float64(n)
	case int:
		minutes = float64(n)
	case int64:
		minutes = float64(n)
	case int32:
		minutes = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		minutes = f
	default:
		return 0, false
	}
	return minutesToDuration(minutes)
}

func minutesToDuration(minutes float64) (time.Duration, bool) {
	if !(minutes > 0) {
		return 0, false
	}
	if minutes >= maxValidity.Minutes() {
		return maxValidity, true
	}
	d := time.Duration(minutes * float64(time.Minute))
	if d <= 0 {
		// ExpiresAt must stay after CreatedAt
		return 0, false
	}
	return d, true
}
