package eventlog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultQueueSize   = 256
	DefaultSendTimeout = 5 * time.Second
)

var (
	ErrQueueFull = errors.New("diagnostic queue full")
	ErrClosed    = errors.New("diagnostic logger closed")
)

// Stats counts what happened to submitted events.
type Stats struct {
	Delivered int64
	Failed    int64
	Dropped   int64
}

type entry struct {
	id    uuid.UUID
	event Event
}

// Logger validates events on the caller's goroutine and delivers them from a
// single background worker.
type Logger struct {
	sink        Sink
	logger      *zap.Logger
	sendTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan entry

	startOnce sync.Once
	done      chan struct{}

	delivered atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// Option configures a Logger
type Option func(*Logger)

// WithQueueSize sets how many events may wait for delivery.
func WithQueueSize(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.queue = make(chan entry, n)
		}
	}
}

// WithSendTimeout bounds each delivery attempt.
func WithSendTimeout(d time.Duration) Option {
	return func(l *Logger) {
		if d > 0 {
			l.sendTimeout = d
		}
	}
}

// New creates a Logger. Call Start to begin delivery and Close to drain.
func New(sink Sink, logger *zap.Logger, opts ...Option) *Logger {
	l := &Logger{
		sink:        sink,
		logger:      logger,
		sendTimeout: DefaultSendTimeout,
		queue:       make(chan entry, DefaultQueueSize),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start launches the delivery worker. Calling it more than once is a no-op.
func (l *Logger) Start() {
	l.startOnce.Do(func() {
		go l.run()
	})
}

// Submit validates the event and queues it without blocking. Invalid events
// return an error wrapping ErrInvalidLogEvent and are not queued.
func (l *Logger) Submit(stack, level, pkg, message string) error {
	e, err := NewEvent(stack, level, pkg, message)
	if err != nil {
		return err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return ErrClosed
	}

	select {
	case l.queue <- entry{id: uuid.New(), event: e}:
		return nil
	default:
		l.dropped.Add(1)
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queue is drained or ctx
// is done, whichever comes first.
func (l *Logger) Close(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	// A logger that was never started still owes its queued events a delivery
	l.Start()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		pending := len(l.queue)
		l.logger.Warn("diagnostic queue not drained before deadline",
			zap.Int("pending", pending),
		)
		return fmt.Errorf("%d diagnostic events abandoned: %w", pending, ctx.Err())
	}
}

// Stats returns delivery counters.
func (l *Logger) Stats() Stats {
	return Stats{
		Delivered: l.delivered.Load(),
		Failed:    l.failed.Load(),
		Dropped:   l.dropped.Load(),
	}
}

func (l *Logger) run() {
	defer close(l.done)
	for en := range l.queue {
		l.deliver(en)
	}
}

func (l *Logger) deliver(en entry) {
	ctx, cancel := context.WithTimeout(context.Background(), l.sendTimeout)
	defer cancel()

	result := l.sink.Send(ctx, en.event)
	if !result.OK() {
		l.failed.Add(1)
		l.logger.Warn("failed to deliver diagnostic event",
			zap.Stringer("event_id", en.id),
			zap.String("level", en.event.Level),
			zap.String("package", en.event.Package),
			zap.String("error", result.Error),
		)
		return
	}

	l.delivered.Add(1)
	l.logger.Debug("diagnostic event delivered",
		zap.Stringer("event_id", en.id),
		zap.String("level", en.event.Level),
		zap.String("package", en.event.Package),
		zap.String("message", en.event.Message),
	)
}
