package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobly/internal/domain/entity"
)

func TestCompanyJobsKey(t *testing.T) {
	assert.Equal(t, "jobs:company:acme", companyJobsKey("acme"))
}

type recordingRedis struct {
	redis.Cmdable
	setNX  []string
	set    int
	stored map[string]any
}

func (r *recordingRedis) SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	r.setNX = append(r.setNX, key)
	if _, ok := r.stored[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	r.stored[key] = value
	return redis.NewBoolResult(true, nil)
}

func (r *recordingRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	r.set++
	r.stored[key] = value
	return redis.NewStatusResult("OK", nil)
}

func TestSet_KeepsExistingEntry(t *testing.T) {
	rdb := &recordingRedis{stored: map[string]any{}}
	c := NewCompanyJobsCache(rdb, time.Minute)
	ctx := context.Background()

	fresh := []*entity.Job{{ID: 1, Title: "Engineer", CompanyHandle: "acme"}}
	stale := []*entity.Job{{ID: 1, Title: "Old Title", CompanyHandle: "acme"}}

	require.NoError(t, c.Set(ctx, "acme", fresh))
	require.NoError(t, c.Set(ctx, "acme", stale))

	assert.Equal(t, []string{"jobs:company:acme", "jobs:company:acme"}, rdb.setNX)
	assert.Zero(t, rdb.set)

	want, err := encodeJobs(fresh)
	require.NoError(t, err)
	assert.Equal(t, want, rdb.stored["jobs:company:acme"])
}

func TestEncodeDecodeJobs(t *testing.T) {
	salary := int64(90000)
	jobs := []*entity.Job{
		{ID: 1, Title: "Engineer", Salary: &salary, CompanyHandle: "acme"},
		{ID: 2, Title: "Analyst", CompanyHandle: "acme"},
	}

	data, err := encodeJobs(jobs)
	require.NoError(t, err)

	decoded, err := decodeJobs(data)
	require.NoError(t, err)
	assert.Equal(t, jobs, decoded)
}

func TestEncodeJobs_EmptyListStaysAnArray(t *testing.T) {
	data, err := encodeJobs([]*entity.Job{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	decoded, err := decodeJobs(data)
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestDecodeJobs_Corrupt(t *testing.T) {
	_, err := decodeJobs([]byte("{not json"))
	assert.Error(t, err)
}
