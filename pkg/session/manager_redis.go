package session

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type Cmdable interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

type SessionManagerRedis struct {
	rdb Cmdable
	jwt SessionManager
	now func() time.Time
}

func NewSessionManagerRedis(rdb Cmdable, jwt SessionManager) *SessionManagerRedis {
	return &SessionManagerRedis{rdb: rdb, jwt: jwt, now: time.Now}
}

func sessionKey(sessID string) string { return "session:" + sessID }

func userSessionsKey(userID int64) string { return "user_sessions:" + strconv.FormatInt(userID, 10) }

func (sm *SessionManagerRedis) Create(ctx context.Context, u *User, sessID string, expiresAt int64) (string, error) {
	token, err := sm.jwt.Create(ctx, u, sessID, expiresAt)
	if err != nil {
		return "", err
	}

	ttl := time.Unix(expiresAt, 0).Sub(sm.now())
	if ttl <= 0 {
		return "", errors.New("session already expired")
	}

	err = sm.rdb.Set(ctx, sessionKey(sessID), u.ID, ttl).Err()
	if err != nil {
		return "", err
	}

	err = sm.rdb.SAdd(ctx, userSessionsKey(u.ID), sessID).Err()
	if err != nil {
		return "", err
	}

	return token, nil
}

func (sm *SessionManagerRedis) Check(ctx context.Context, r *http.Request) (*Session, error) {
	sess, err := sm.jwt.Check(ctx, r)
	if err != nil {
		return nil, err
	}

	userIDStr, err := sm.rdb.Get(ctx, sessionKey(sess.SessionID)).Result()
	if err != nil {
		return nil, err
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 0)
	if err != nil {
		return nil, err
	}

	if userID != sess.User.ID {
		return nil, errors.New("wrong user")
	}

	return sess, nil
}

func (sm *SessionManagerRedis) Destroy(ctx context.Context, sess *Session) error {
	err := sm.rdb.Del(ctx, sessionKey(sess.SessionID)).Err()
	if err != nil {
		return err
	}

	return sm.rdb.SRem(ctx, userSessionsKey(sess.User.ID), sess.SessionID).Err()
}

func (sm *SessionManagerRedis) DestroyAll(ctx context.Context, user *User) error {
	sessionIDs, err := sm.rdb.SMembers(ctx, userSessionsKey(user.ID)).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(sessionIDs)+1)
	for _, id := range sessionIDs {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(user.ID))

	return sm.rdb.Del(ctx, keys...).Err()
}
