// Package store keeps privacy-conscious visit statistics in SQLite: hashed
// visitor addresses, outbound link clicks and overlay panel opens. Nothing
// here holds UI state.
package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/elifdikmn/elif-dev/internal/logging"
)

// Retention is how long visitor rows are kept.
const Retention = 365 * 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp);

CREATE TABLE IF NOT EXISTS link_clicks (
	name TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	clicks INTEGER NOT NULL DEFAULT 0,
	last_clicked DATETIME
);

CREATE TABLE IF NOT EXISTS panel_opens (
	view TEXT PRIMARY KEY,
	opens INTEGER NOT NULL DEFAULT 0
);`

// Store wraps the statistics database.
type Store struct {
	db     *sql.DB
	salt   string
	now    func() time.Time
	logger *logrus.Entry
}

// Open connects to dsn and creates the schema. The IP hashing salt is
// random per process, so hashes cannot be joined across restarts.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY and keeps
	// a shared in-memory database alive.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		salt:   salt,
		now:    time.Now,
		logger: logging.NewLogger("store"),
	}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP returns a truncated salted hash of ip, stable for this process.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RandomToken returns a 32-byte hex token for admin sessions.
func RandomToken() (string, error) {
	return randomHex(32)
}
