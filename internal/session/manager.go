package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"skycast/internal/preferences"
	"skycast/internal/types"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidID       = errors.New("session id must be a UUID")
)

// DefaultIdleTTL is how long an untouched session is kept in memory
const DefaultIdleTTL = 30 * time.Minute

// Manager owns the live sessions and evicts idle ones on a schedule
type Manager struct {
	opts    *Options
	idleTTL time.Duration
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	cron *cron.Cron
}

func NewManager(opts Options, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Manager{
		opts:     &opts,
		idleTTL:  idleTTL,
		logger:   opts.Logger.With("component", "session-manager"),
		sessions: make(map[string]*Session),
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

// Create returns the session for id, restoring its persisted preferences.
// An empty id starts a fresh session with a new ID. viewer is the browser's
// timezone and may be nil.
func (m *Manager) Create(ctx context.Context, id string, viewer *time.Location) (*Session, error) {
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	m.mu.RLock()
	existing, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		existing.SetViewerTimezone(viewer)
		existing.touch(m.opts.now())
		return existing, nil
	}

	restored, err := m.opts.Preferences.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check preferences: %w", err)
	}
	prefs, err := m.opts.Preferences.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another request may have created it while preferences were loading
	if existing, ok := m.sessions[id]; ok {
		existing.SetViewerTimezone(viewer)
		return existing, nil
	}

	s := newSession(id, prefs, viewer, m.opts)
	m.sessions[id] = s

	m.logger.Info("session created",
		"session_id", id,
		"restored", restored,
		"viewer_timezone", locationName(viewer),
		"theme", prefs.Theme.String(),
		"unit", prefs.Unit.String(),
	)

	return s, nil
}

// Get returns a live session and marks it as accessed
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.touch(m.opts.now())
	return s, nil
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed. Preferences stay persisted so an evicted ID can be restored.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.idleSince()) > m.idleTTL {
			delete(m.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		m.logger.Info("evicted idle sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

// Start schedules Sweep using a cron spec such as "@every 5m"
func (m *Manager) Start(schedule string) error {
	_, err := m.cron.AddFunc(schedule, func() {
		m.Sweep(m.opts.now())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	m.cron.Start()
	m.logger.Info("session sweeper started", "schedule", schedule, "idle_ttl", m.idleTTL)
	return nil
}

// Stop halts the sweeper and waits for a running sweep to finish
func (m *Manager) Stop() {
	<-m.cron.Stop().Done()
}

// Preview renders the weather for query without keeping a session.
// A blank query uses the default city.
func (m *Manager) Preview(ctx context.Context, query string, units types.UnitSystem, th types.Theme, viewer *time.Location) (*View, error) {
	if strings.TrimSpace(query) == "" {
		query = m.opts.DefaultCity
	}

	s := newSession(uuid.NewString(), preferences.Preferences{Theme: th, Unit: units}, viewer, m.opts)
	if err := s.Search(ctx, query); err != nil {
		return nil, err
	}
	return s.Snapshot().View, nil
}

func locationName(loc *time.Location) string {
	if loc == nil {
		return ""
	}
	return loc.String()
}
