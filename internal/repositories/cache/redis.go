package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"jobly/internal/domain/entity"
	"jobly/internal/models/dto"
	"time"

	"github.com/redis/go-redis/v9"
)

const companyJobsKeyPrefix = "jobs:company:"

// CompanyJobsCache stores the job list of a company as JSON under one key.
type CompanyJobsCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

func NewCompanyJobsCache(rdb redis.Cmdable, ttl time.Duration) *CompanyJobsCache {
	return &CompanyJobsCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func companyJobsKey(handle string) string {
	return companyJobsKeyPrefix + handle
}

// Get reports a miss with ok=false and a nil error.
func (c *CompanyJobsCache) Get(ctx context.Context, handle string) ([]*entity.Job, bool, error) {
	data, err := c.rdb.Get(ctx, companyJobsKey(handle)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	jobs, err := decodeJobs(data)
	if err != nil {
		return nil, false, err
	}
	return jobs, true, nil
}

// Set stores the list only when no entry exists, so a slow reader never
// replaces a list cached after it.
func (c *CompanyJobsCache) Set(ctx context.Context, handle string, jobs []*entity.Job) error {
	data, err := encodeJobs(jobs)
	if err != nil {
		return err
	}

	if err := c.rdb.SetNX(ctx, companyJobsKey(handle), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	return nil
}

func (c *CompanyJobsCache) Invalidate(ctx context.Context, handle string) error {
	if err := c.rdb.Del(ctx, companyJobsKey(handle)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func encodeJobs(jobs []*entity.Job) ([]byte, error) {
	data, err := json.Marshal(dto.FromJobs(jobs))
	if err != nil {
		return nil, fmt.Errorf("marshal company jobs: %w", err)
	}
	return data, nil
}

func decodeJobs(data []byte) ([]*entity.Job, error) {
	var cached []dto.JobDTO
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshal company jobs: %w", err)
	}

	jobs := make([]*entity.Job, 0, len(cached))
	for _, d := range cached {
		jobs = append(jobs, d.ToEntity())
	}
	return jobs, nil
}
