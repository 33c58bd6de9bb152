package entity

import "time"

type JobAction string

const (
	JobCreated JobAction = "created"
	JobUpdated JobAction = "updated"
	JobDeleted JobAction = "deleted"
)

// JobEvent describes a completed change to a job.
type JobEvent struct {
	Action     JobAction
	Job        *Job
	Changes    *ChangeSet
	OccurredAt time.Time
}

func NewJobEvent(action JobAction, job *Job) JobEvent {
	return JobEvent{
		Action:     action,
		Job:        job,
		OccurredAt: time.Now().UTC(),
	}
}
