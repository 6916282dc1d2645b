package memory

import (
	"context"
	"sync"

	"go-shortlink/internal/urlservice/domain"
)

// URLRepository keeps links in memory for the lifetime of the process.
// Records are never evicted; expired links stay readable.
type URLRepository struct {
	mu    sync.RWMutex
	links map[string]*domain.Link
}

// NewURLRepository creates an empty repository
func NewURLRepository() *URLRepository {
	return &URLRepository{
		links: make(map[string]*domain.Link),
	}
}

// Insert stores link under its short code. The existence check and the
// write happen under one lock, so two callers racing for the same code
// get exactly one success.
func (r *URLRepository) Insert(ctx context.Context, link *domain.Link) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.links[link.ShortCode]; exists {
		return domain.ErrShortcodeCollision
	}

	r.links[link.ShortCode] = link.Clone()
	return nil
}

// Update runs fn against the stored link while holding the write lock.
// fn must not mutate the link on a path that returns an error.
func (r *URLRepository) Update(ctx context.Context, code string, fn func(link *domain.Link) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[code]
	if !ok {
		return domain.ErrShortcodeNotFound
	}

	return fn(link)
}

// FindByShortCode returns a snapshot of the link.
func (r *URLRepository) FindByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.links[code]
	if !ok {
		return nil, domain.ErrShortcodeNotFound
	}

	return link.Clone(), nil
}

// Count returns the number of stored links
func (r *URLRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.links)
}
