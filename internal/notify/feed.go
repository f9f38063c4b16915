package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is how long a notification stays visible
const DefaultDuration = 3 * time.Second

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient status message shown to the user
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Sink receives status messages
type Sink interface {
	Notify(message string, severity Severity)
}

// Feed keeps the notifications raised for one session until they expire
type Feed struct {
	mu       sync.Mutex
	items    []Notification
	duration time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewFeed creates a feed whose entries expire after duration.
// A non-positive duration uses DefaultDuration.
func NewFeed(duration time.Duration, logger *slog.Logger) *Feed {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Feed{
		duration: duration,
		now:      time.Now,
		logger:   logger,
	}
}

func (f *Feed) Notify(message string, severity Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	f.prune(now)
	f.items = append(f.items, Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(f.duration),
	})

	if severity == SeverityError {
		f.logger.Error("notification raised", "severity", severity, "message", message)
	} else {
		f.logger.Info("notification raised", "severity", severity, "message", message)
	}
}

// Active returns the notifications not yet expired at now, newest first
func (f *Feed) Active(now time.Time) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prune(now)
	out := make([]Notification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out
}

func (f *Feed) prune(now time.Time) {
	kept := f.items[:0]
	for _, n := range f.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	f.items = kept
}

var _ Sink = (*Feed)(nil)
