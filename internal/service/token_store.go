package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	accessKeyPrefix  = "access_token"
	refreshKeyPrefix = "refresh_token"

	scanBatchSize = 100
)

// TokenStore keeps the ids of issued tokens in Redis. A token is only
// accepted while its key exists, which makes logout and account removal
// effective before the JWT expires.
//
// Keys: access_token:<role>:<account id>:<token id>
type TokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewTokenStore(client *redis.Client, log *logrus.Logger) *TokenStore {
	return &TokenStore{client: client, log: log}
}

func tokenKey(prefix, role string, accountID int, tokenID string) string {
	return fmt.Sprintf("%s:%s:%d:%s", prefix, role, accountID, tokenID)
}

// Store registers an access/refresh pair in one round trip.
func (s *TokenStore) Store(ctx context.Context, role string, accountID int, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey(accessKeyPrefix, role, accountID, accessID), "valid", accessTTL)
	pipe.Set(ctx, tokenKey(refreshKeyPrefix, role, accountID, refreshID), "valid", refreshTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to store tokens in Redis: %+v", err)
		return fmt.Errorf("store tokens: %w", err)
	}
	return nil
}

func (s *TokenStore) IsAccessValid(ctx context.Context, role string, accountID int, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(accessKeyPrefix, role, accountID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check access token: %w", err)
	}
	return exists > 0, nil
}

// ConsumeRefresh deletes the refresh token and reports whether it was still
// registered. Two concurrent refreshes with the same token cannot both win.
func (s *TokenStore) ConsumeRefresh(ctx context.Context, role string, accountID int, tokenID string) (bool, error) {
	deleted, err := s.client.Del(ctx, tokenKey(refreshKeyPrefix, role, accountID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("consume refresh token: %w", err)
	}
	return deleted > 0, nil
}

// Revoke removes the given tokens. An empty id is skipped.
func (s *TokenStore) Revoke(ctx context.Context, role string, accountID int, accessID, refreshID string) error {
	var keys []string
	if accessID != "" {
		keys = append(keys, tokenKey(accessKeyPrefix, role, accountID, accessID))
	}
	if refreshID != "" {
		keys = append(keys, tokenKey(refreshKeyPrefix, role, accountID, refreshID))
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to revoke tokens: %+v", err)
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

// RevokeAll drops every token of an account, e.g. when it is deleted or
// moves from the users table to the admins table.
func (s *TokenStore) RevokeAll(ctx context.Context, role string, accountID int) error {
	for _, prefix := range []string{accessKeyPrefix, refreshKeyPrefix} {
		pattern := fmt.Sprintf("%s:%s:%d:*", prefix, role, accountID)
		iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.log.Warnf("Failed to scan %s keys: %+v", prefix, err)
			return fmt.Errorf("scan %s keys: %w", prefix, err)
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete %s keys: %+v", prefix, err)
				return fmt.Errorf("delete %s keys: %w", prefix, err)
			}
		}
	}
	return nil
}
