package repositories

import (
	"context"
	"errors"
	"jobly/internal/domain/entity"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrCompanyNotFound = errors.New("company not found")
)

type JobRepositoryInterface interface {
	// Create stores the job and fills in the identifier assigned by storage.
	Create(ctx context.Context, job *entity.Job) error
	Read(ctx context.Context, jobID int64) (*entity.Job, error)
	List(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error)
	// ListByCompany returns ErrCompanyNotFound only when the company itself
	// does not exist; a company without jobs yields an empty slice.
	ListByCompany(ctx context.Context, handle string) ([]*entity.Job, error)
	Update(ctx context.Context, jobID int64, changes entity.ChangeSet) (*entity.Job, error)
	// Delete removes the job and returns it as it was stored.
	Delete(ctx context.Context, jobID int64) (*entity.Job, error)
}

type JobPublisherInterface interface {
	Publish(ctx context.Context, event entity.JobEvent) error
}

type CompanyJobsCacheInterface interface {
	Get(ctx context.Context, handle string) ([]*entity.Job, bool, error)
	// Set does not overwrite an existing entry.
	Set(ctx context.Context, handle string, jobs []*entity.Job) error
	Invalidate(ctx context.Context, handle string) error
}
