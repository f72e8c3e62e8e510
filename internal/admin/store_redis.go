// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashercourt/marquee/internal/platform/constants"
)

// RedisSessionStore tracks live admin sessions in Redis.
//
// Each session is a single key holding the admin email, expiring with the
// session TTL. Deleting the key revokes every JWT bound to that session.
type RedisSessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed [RedisSessionStore].
func NewSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

/*
Create registers a fresh session under the standard key prefix.

Parameters:
  - context: context.Context
  - sessionID: string
  - email: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (store *RedisSessionStore) Create(context context.Context, sessionID, email string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + sessionID

	if err := store.client.Set(context, key, email, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}
	return nil
}

/*
Revoke removes a session, invalidating all tokens bound to it.

Description: Idempotent. Revoking an absent session is not an error.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Execution errors
*/
func (store *RedisSessionStore) Revoke(context context.Context, sessionID string) error {
	key := constants.RedisPrefixSession + sessionID

	if err := store.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}
	return nil
}

// SessionAlive reports whether the session still exists in Redis. It
// satisfies the authentication middleware's session check, so a logout takes
// effect on the very next request.
func (store *RedisSessionStore) SessionAlive(context context.Context, sessionID string) bool {
	key := constants.RedisPrefixSession + sessionID

	_, err := store.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false
		}
		// Connectivity failures fail closed.
		return false
	}
	return true
}
