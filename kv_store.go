package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"lg/sahha-go-api/nutrition"
)

// Redis keys. The profile is one JSON blob; logs are a hash of id -> JSON so a
// single log can be deleted without rewriting the rest.
const (
	profileKey = "sahha:profile"
	logsKey    = "sahha:logs"
)

// kvStore is the key-value backend, the server-side stand-in for the browser
// storage the app started out with.
type kvStore struct {
	rdb *redis.Client
}

func newKVStore(rdb *redis.Client) *kvStore {
	return &kvStore{rdb: rdb}
}

// newRedisClient parses a redis:// URL and verifies the connection.
func newRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Connected to Redis at %s", opts.Addr)
	return client, nil
}

func (s *kvStore) GetProfile(ctx context.Context) (nutrition.UserProfile, error) {
	data, err := s.rdb.Get(ctx, profileKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nutrition.UserProfile{}, errNotFound
	}
	if err != nil {
		return nutrition.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	var p nutrition.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nutrition.UserProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func (s *kvStore) SaveProfile(ctx context.Context, p nutrition.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.rdb.Set(ctx, profileKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

func (s *kvStore) ListMealLogs(ctx context.Context) ([]nutrition.MealLog, error) {
	vals, err := s.rdb.HVals(ctx, logsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list meal logs: %w", err)
	}
	logs := make([]nutrition.MealLog, 0, len(vals))
	for _, v := range vals {
		var l nutrition.MealLog
		if err := json.Unmarshal([]byte(v), &l); err != nil {
			return nil, fmt.Errorf("decode meal log: %w", err)
		}
		logs = append(logs, l)
	}
	// Hash order is arbitrary; newest first to match the other backend.
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}

func (s *kvStore) AddMealLog(ctx context.Context, l nutrition.MealLog) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode meal log: %w", err)
	}
	if err := s.rdb.HSet(ctx, logsKey, l.ID, data).Err(); err != nil {
		return fmt.Errorf("add meal log: %w", err)
	}
	return nil
}

func (s *kvStore) DeleteMealLog(ctx context.Context, id string) error {
	n, err := s.rdb.HDel(ctx, logsKey, id).Result()
	if err != nil {
		return fmt.Errorf("delete meal log: %w", err)
	}
	if n == 0 {
		return errNotFound
	}
	return nil
}

func (s *kvStore) Reset(ctx context.Context) error {
	if err := s.rdb.Del(ctx, profileKey, logsKey).Err(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
