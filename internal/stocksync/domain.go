// Package stocksync imports per-location stock levels from a spreadsheet.
package stocksync

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vapemart/vapemart/internal/shared"
)

// Job statuses.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Job tracks one sync run. Progress counters are written by the worker and
// polled by the admin console.
type Job struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Total      int        `json:"total"`
	Updated    int        `json:"updated"`
	Skipped    int        `json:"skipped"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Store keeps job state and uploaded workbooks in Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore constructs a Store. Entries expire after ttl.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

func jobKey(id string) string     { return "stocksync:job:" + id }
func payloadKey(id string) string { return "stocksync:payload:" + id }

const latestKey = "stocksync:latest"

// SaveJob persists job state and marks it as the most recent run.
func (s *Store) SaveJob(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, jobKey(job.ID), data, s.ttl).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, latestKey, job.ID, s.ttl).Err()
}

// GetJob loads job state by id.
func (s *Store) GetJob(ctx context.Context, id string) (Job, error) {
	data, err := s.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Job{}, shared.ErrNotFound
		}
		return Job{}, err
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// LatestJob loads the most recent run, if any.
func (s *Store) LatestJob(ctx context.Context) (Job, error) {
	id, err := s.client.Get(ctx, latestKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Job{}, shared.ErrNotFound
		}
		return Job{}, err
	}
	return s.GetJob(ctx, id)
}

// SaveWorkbook stores uploaded workbook bytes for the worker to pick up.
func (s *Store) SaveWorkbook(ctx context.Context, jobID string, data []byte) error {
	return s.client.Set(ctx, payloadKey(jobID), data, s.ttl).Err()
}

// TakeWorkbook fetches and deletes the uploaded workbook for a job.
func (s *Store) TakeWorkbook(ctx context.Context, jobID string) ([]byte, error) {
	data, err := s.client.Get(ctx, payloadKey(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	_ = s.client.Del(ctx, payloadKey(jobID)).Err()
	return data, nil
}
