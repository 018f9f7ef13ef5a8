// Package session persists the client's credentials the way the browser app
// kept them in localStorage: two independent string-keyed entries, one for
// the bearer token and one for the serialized user record. A session exists
// only when both entries are present.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dkozlov/stylist/internal/client/models"
	"github.com/dkozlov/stylist/internal/dbx"

	_ "modernc.org/sqlite"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Session pairs the bearer credential with the user identity it
// authenticates. It is created on login/signup and destroyed on logout or
// the first 401; the token is never refreshed in place.
type Session struct {
	Token string
	User  models.UserRecord
}

// Store is the persistent session store with an in-memory mirror. The mirror
// is what the gateway consults on every request; persistence is touched only
// by Load, Save and Clear.
type Store struct {
	db *sql.DB

	mu      sync.RWMutex
	current Session
	present bool
}

// Open opens (creating if needed) the session database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, bool, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get session[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}

// Load reads the persisted session into the in-memory mirror. A session is
// returned only when both the token and the user entry are present; a lone
// survivor of a partial write is cleared and treated as logged out. The
// token is not validated against the server — expiry is discovered lazily
// via 401.
func (s *Store) Load(ctx context.Context) (Session, bool, error) {
	token, haveToken, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return Session{}, false, err
	}
	userRaw, haveUser, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return Session{}, false, err
	}

	if !haveToken || !haveUser {
		if haveToken || haveUser {
			if err := s.Clear(ctx); err != nil {
				return Session{}, false, err
			}
		}
		return Session{}, false, nil
	}

	var user models.UserRecord
	if err := json.Unmarshal(userRaw, &user); err != nil {
		// A corrupt user entry means the pair is unusable.
		if clearErr := s.Clear(ctx); clearErr != nil {
			return Session{}, false, clearErr
		}
		return Session{}, false, nil
	}

	sess := Session{Token: string(token), User: user}

	s.mu.Lock()
	s.current, s.present = sess, true
	s.mu.Unlock()

	return sess, true, nil
}

// Save persists both session entries transactionally and updates the mirror.
func (s *Store) Save(ctx context.Context, sess Session) error {
	userRaw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUser, userRaw)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current, s.present = sess, true
	s.mu.Unlock()
	return nil
}

// Clear removes both entries and wipes the mirror. Used on logout and on the
// gateway's 401 path.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.current, s.present = Session{}, false
	s.mu.Unlock()
	return nil
}

// Current returns the in-memory session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.present
}

// Token returns the bearer token of the in-memory session, or "" when
// logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.present {
		return ""
	}
	return s.current.Token
}
