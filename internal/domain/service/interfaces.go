package services

import (
	"context"
	"jobly/internal/domain/entity"
)

type JobServiceInterface interface {
	CreateJob(ctx context.Context, job *entity.Job) (*entity.Job, error)
	GetJob(ctx context.Context, jobID int64) (*entity.Job, error)
	ListJobs(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error)
	GetCompanyJobs(ctx context.Context, handle string) ([]*entity.Job, error)
	UpdateJob(ctx context.Context, jobID int64, changes entity.ChangeSet) (*entity.Job, error)
	DeleteJob(ctx context.Context, jobID int64) error
}
