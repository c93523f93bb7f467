package utils

import (
	"context"
	"sync"
	"time"

	"github.com/cppla/travelquest/config"
)

var (
	blacklist   = map[string]time.Time{}
	blacklistMu sync.Mutex
)

func blacklistKey(token string) string {
	return config.Get().RedisKeyPrefix + ":jwt:blacklist:" + token
}

// BlacklistToken revokes a token until its natural expiration.
func BlacklistToken(ctx context.Context, token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, blacklistKey(token), "1", ttl).Err(); err == nil {
			return
		}
	}
	blacklistMu.Lock()
	blacklist[token] = expiresAt
	blacklistMu.Unlock()
}

// IsTokenBlacklisted checks if a token was revoked before natural expiration.
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if n, err := rc.Exists(ctx, blacklistKey(token)).Result(); err == nil && n > 0 {
			return true
		}
	}

	blacklistMu.Lock()
	defer blacklistMu.Unlock()
	expiresAt, ok := blacklist[token]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(blacklist, token)
		return false
	}
	return true
}
