package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"skycast/internal/types"

	_ "modernc.org/sqlite"
)

// Preference keys
const (
	KeyTheme = "theme"
	KeyUnit  = "unit"
)

// Preferences are the two persisted display settings for one browser profile
type Preferences struct {
	Theme types.Theme      `json:"theme"`
	Unit  types.UnitSystem `json:"unit"`
}

// Store persists preferences keyed by session ID
type Store interface {
	Load(ctx context.Context, sessionID string) (Preferences, error)
	SaveTheme(ctx context.Context, sessionID string, theme types.Theme) error
	SaveUnit(ctx context.Context, sessionID string, unit types.UnitSystem) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Close() error
}

const schema = `CREATE TABLE IF NOT EXISTS preferences (
	session_id TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (session_id, key)
);`

// SQLiteStore implements Store on the pure Go modernc.org/sqlite driver
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLite opens (or creates) the database at path and applies the schema
func NewSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	logger = logger.With("component", "preferences-store")

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		logger.Warn("could not set WAL mode", "error", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply preferences schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Load reads both preferences. Missing keys yield the defaults (light, metric).
func (s *SQLiteStore) Load(ctx context.Context, sessionID string) (Preferences, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences WHERE session_id = ?`, sessionID)
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Preferences{}, fmt.Errorf("failed to scan preference: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	return fromValues(values), nil
}

func (s *SQLiteStore) SaveTheme(ctx context.Context, sessionID string, theme types.Theme) error {
	return s.set(ctx, sessionID, KeyTheme, theme.String())
}

func (s *SQLiteStore) SaveUnit(ctx context.Context, sessionID string, unit types.UnitSystem) error {
	return s.set(ctx, sessionID, KeyUnit, unit.String())
}

// Exists reports whether any preference was ever saved for sessionID
func (s *SQLiteStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM preferences WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to count preferences: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) set(ctx context.Context, sessionID, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences(session_id, key, value, updated_at) VALUES(?,?,?,?)
		ON CONFLICT(session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		sessionID, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}

	s.logger.Debug("saved preference", "session_id", sessionID, "key", key, "value", value)
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore keeps preferences in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]map[string]string)}
}

func (m *MemoryStore) Load(ctx context.Context, sessionID string) (Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fromValues(m.values[sessionID]), nil
}

func (m *MemoryStore) SaveTheme(ctx context.Context, sessionID string, theme types.Theme) error {
	return m.set(sessionID, KeyTheme, theme.String())
}

func (m *MemoryStore) SaveUnit(ctx context.Context, sessionID string, unit types.UnitSystem) error {
	return m.set(sessionID, KeyUnit, unit.String())
}

func (m *MemoryStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[sessionID]
	return ok, nil
}

func (m *MemoryStore) set(sessionID, key, value string) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[sessionID] == nil {
		m.values[sessionID] = make(map[string]string, 2)
	}
	m.values[sessionID][key] = value
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func fromValues(values map[string]string) Preferences {
	return Preferences{
		Theme: types.ParseTheme(values[KeyTheme]),
		Unit:  types.ParseUnitSystem(values[KeyUnit]),
	}
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
