package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobly/internal/domain/entity"
	"jobly/internal/models/dto"
)

func TestSubjectFor(t *testing.T) {
	cases := map[entity.JobAction]string{
		entity.JobCreated: "JOBS.created",
		entity.JobUpdated: "JOBS.updated",
		entity.JobDeleted: "JOBS.deleted",
	}
	for action, want := range cases {
		got, err := SubjectFor(action)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := SubjectFor("archived")
	assert.Error(t, err)
}

func TestJobEventPayload(t *testing.T) {
	changes := entity.NewChangeSet()
	changes.Set("salary", int64(95000))

	event := entity.JobEvent{
		Action:     entity.JobUpdated,
		Job:        &entity.Job{ID: 3, Title: "Engineer", CompanyHandle: "acme"},
		Changes:    &changes,
		OccurredAt: time.UnixMilli(1700000000000),
	}

	data, err := json.Marshal(dto.FromJobEvent(event))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"action": "updated",
		"job": {"id": 3, "title": "Engineer", "salary": null, "equity": null, "companyHandle": "acme"},
		"changes": {"salary": 95000},
		"occurredAt": 1700000000000
	}`, string(data))
}
