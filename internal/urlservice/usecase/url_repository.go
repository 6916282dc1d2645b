package usecase

import (
	"context"

	"go-shortlink/internal/urlservice/domain"
)

// URLRepository stores links. Insert and Update must be atomic with
// respect to each other.
type URLRepository interface {
	Insert(ctx context.Context, link *domain.Link) error
	Update(ctx context.Context, code string, fn func(link *domain.Link) error) error
	FindByShortCode(ctx context.Context, code string) (*domain.Link, error)
	Count(ctx context.Context) int
}

// DiagnosticLogger forwards structured events to the remote log collector.
// It must not block.
type DiagnosticLogger interface {
	Submit(stack, level, pkg, message string) error
}

// GeoResolver maps a client IP to a country code, "unknown" when it can't.
type GeoResolver interface {
	ResolveCountry(ip string) string
}
