package session

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"
)

type SessionDB struct {
	ID     string
	UserID int64
}

// SessionManagerSQL keeps revocable sessions in MySQL for deployments
// without Redis.
type SessionManagerSQL struct {
	db  *sql.DB
	jwt SessionManager
}

func NewSessionManagerSQL(db *sql.DB, jwt SessionManager) *SessionManagerSQL {
	return &SessionManagerSQL{db: db, jwt: jwt}
}

func (sm *SessionManagerSQL) Create(ctx context.Context, u *User, sessID string, expiresAt int64) (string, error) {
	token, err := sm.jwt.Create(ctx, u, sessID, expiresAt)
	if err != nil {
		return "", err
	}

	_, err = sm.db.ExecContext(ctx, "INSERT INTO sessions (`id`, `user_id`, `expires_at`) VALUES (?, ?, ?)",
		sessID, u.ID, time.Unix(expiresAt, 0).UTC())
	if err != nil {
		return "", err
	}

	return token, nil
}

func (sm *SessionManagerSQL) Check(ctx context.Context, r *http.Request) (*Session, error) {
	sess, err := sm.jwt.Check(ctx, r)
	if err != nil {
		return nil, err
	}

	sessDB := &SessionDB{}
	err = sm.db.QueryRowContext(ctx, "SELECT `id`, `user_id` FROM sessions WHERE id = ? AND expires_at > ?",
		sess.SessionID, time.Now().UTC()).Scan(&sessDB.ID, &sessDB.UserID)
	if err != nil {
		return nil, err
	}

	if sessDB.UserID != sess.User.ID {
		return nil, errors.New("wrong user")
	}

	return sess, nil
}

func (sm *SessionManagerSQL) Destroy(ctx context.Context, sess *Session) error {
	_, err := sm.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sess.SessionID)
	return err
}

func (sm *SessionManagerSQL) DestroyAll(ctx context.Context, user *User) error {
	_, err := sm.db.ExecContext(ctx, "DELETE FROM sessions WHERE user_id = ?", user.ID)
	return err
}
