package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"quill/internal/middleware"
	"quill/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie carrying the session token.
const CookieName = "quill_session"

// UserFinder loads users when resolving a session back to an identity.
type UserFinder interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Manager binds user ids to session ids in Redis. The session token handed to
// the client is a signed JWT carrying only the session id; Redis holds the
// authoritative binding, so terminating a session takes effect immediately
// regardless of the token's lifetime.
type Manager struct {
	redis  *redis.Client
	users  UserFinder
	secret []byte
	ttl    time.Duration
}

// NewManager creates a session manager.
func NewManager(rdb *redis.Client, users UserFinder, secret string, ttl time.Duration) *Manager {
	return &Manager{
		redis:  rdb,
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func sessionKey(sid string) string {
	return "sess:" + sid
}

func userSessionKey(userID uint) string {
	return fmt.Sprintf("sess:user:%d", userID)
}

// Establish binds the user's id to a session and returns the session token.
// Calling it again for the same user before termination reuses the live
// session and refreshes its TTL.
func (m *Manager) Establish(ctx context.Context, user *models.User) (string, error) {
	sid, err := m.redis.Get(ctx, userSessionKey(user.ID)).Result()
	if err == nil && sid != "" {
		// Live session: refresh both bindings and re-issue the token.
		pipe := m.redis.TxPipeline()
		pipe.Expire(ctx, sessionKey(sid), m.ttl)
		pipe.Expire(ctx, userSessionKey(user.ID), m.ttl)
		if _, err := pipe.Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to refresh session: %w", err)
		}
		return m.signToken(sid)
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}

	sid = uuid.NewString()
	pipe := m.redis.TxPipeline()
	pipe.Set(ctx, sessionKey(sid), strconv.FormatUint(uint64(user.ID), 10), m.ttl)
	pipe.Set(ctx, userSessionKey(user.ID), sid, m.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to establish session: %w", err)
	}

	return m.signToken(sid)
}

// Resolve maps a session token to an identity. Every failure path resolves to
// Anonymous: absent or malformed tokens, unknown or expired session ids, and
// sessions whose user no longer exists (the stale binding is cleaned up).
func (m *Manager) Resolve(ctx context.Context, token string) Identity {
	if token == "" {
		return Anonymous
	}

	sid, ok := m.parseToken(token)
	if !ok {
		return Anonymous
	}

	uidStr, err := m.redis.Get(ctx, sessionKey(sid)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			middleware.Logger.Warn("session lookup failed", slog.String("error", err.Error()))
		}
		return Anonymous
	}

	uid, err := strconv.ParseUint(uidStr, 10, 32)
	if err != nil {
		return Anonymous
	}

	user, err := m.users.GetByID(ctx, uint(uid))
	if err != nil {
		if models.HasCode(err, models.CodeNotFound) {
			// Stale session: the bound user is gone. Fail closed.
			m.cleanup(ctx, sid, uint(uid))
		} else {
			middleware.Logger.Warn("session user lookup failed", slog.String("error", err.Error()))
		}
		return Anonymous
	}

	return Authenticated(user)
}

// Terminate clears the identity bound to the token. It is idempotent and
// succeeds for tokens that never had a session.
func (m *Manager) Terminate(ctx context.Context, token string) {
	if token == "" {
		return
	}
	sid, ok := m.parseToken(token)
	if !ok {
		return
	}

	uidStr, err := m.redis.Get(ctx, sessionKey(sid)).Result()
	if err != nil {
		return
	}
	if uid, perr := strconv.ParseUint(uidStr, 10, 32); perr == nil {
		m.cleanup(ctx, sid, uint(uid))
		return
	}
	m.redis.Del(ctx, sessionKey(sid))
}

func (m *Manager) cleanup(ctx context.Context, sid string, userID uint) {
	if err := m.redis.Del(ctx, sessionKey(sid), userSessionKey(userID)).Err(); err != nil {
		middleware.Logger.Warn("session cleanup failed", slog.String("error", err.Error()))
	}
}

// signToken wraps the session id in a signed JWT so the cookie value is
// tamper-evident. The exp claim mirrors the Redis TTL; Redis stays the source
// of truth for liveness.
func (m *Manager) signToken(sid string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parseToken(token string) (string, bool) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
