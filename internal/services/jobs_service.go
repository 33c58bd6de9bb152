package services

import (
	"context"
	"errors"
	"fmt"
	"jobly/internal/domain/entity"
	repositories "jobly/internal/domain/repository"

	"go.uber.org/zap"
)

type JobsService struct {
	jobsRepo  repositories.JobRepositoryInterface
	cache     repositories.CompanyJobsCacheInterface
	publisher repositories.JobPublisherInterface
	logger    *zap.Logger
}

func NewJobsService(jobsRepo repositories.JobRepositoryInterface, cache repositories.CompanyJobsCacheInterface, publisher repositories.JobPublisherInterface, logger *zap.Logger) *JobsService {
	return &JobsService{
		jobsRepo:  jobsRepo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateJob validates and stores a new job. The identifier comes from storage.
func (j *JobsService) CreateJob(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	if err := validateNewJob(job); err != nil {
		return nil, err
	}

	if err := j.jobsRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	j.invalidateCompany(ctx, job.CompanyHandle)
	j.publish(ctx, entity.NewJobEvent(entity.JobCreated, job))

	return job, nil
}

// GetJob получает задачу по ID
func (j *JobsService) GetJob(ctx context.Context, jobID int64) (*entity.Job, error) {
	job, err := j.jobsRepo.Read(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// ListJobs returns the jobs matching filter ordered by title.
func (j *JobsService) ListJobs(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error) {
	jobs, err := j.jobsRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// GetCompanyJobs reads through the cache when one is configured. A write that
// invalidates between the storage read and the cache fill leaves the older
// list cached; it expires after the cache TTL.
func (j *JobsService) GetCompanyJobs(ctx context.Context, handle string) ([]*entity.Job, error) {
	if j.cache != nil {
		jobs, ok, err := j.cache.Get(ctx, handle)
		if err != nil {
			j.logger.Warn("company jobs cache read failed", zap.String("company", handle), zap.Error(err))
		}
		if ok {
			return jobs, nil
		}
	}

	jobs, err := j.jobsRepo.ListByCompany(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("get company jobs: %w", err)
	}

	if j.cache != nil {
		if err := j.cache.Set(ctx, handle, jobs); err != nil {
			j.logger.Warn("company jobs cache write failed", zap.String("company", handle), zap.Error(err))
		}
	}
	return jobs, nil
}

// UpdateJob applies a partial update. Only title, salary and equity are
// writable; any other field is rejected by the repository.
func (j *JobsService) UpdateJob(ctx context.Context, jobID int64, changes entity.ChangeSet) (*entity.Job, error) {
	normalized, err := normalizeJobChanges(changes)
	if err != nil {
		return nil, err
	}

	job, err := j.jobsRepo.Update(ctx, jobID, normalized)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	j.invalidateCompany(ctx, job.CompanyHandle)
	event := entity.NewJobEvent(entity.JobUpdated, job)
	event.Changes = &normalized
	j.publish(ctx, event)

	return job, nil
}

// DeleteJob удаляет задачу по ID
func (j *JobsService) DeleteJob(ctx context.Context, jobID int64) error {
	job, err := j.jobsRepo.Delete(ctx, jobID)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	j.invalidateCompany(ctx, job.CompanyHandle)
	j.publish(ctx, entity.NewJobEvent(entity.JobDeleted, job))

	return nil
}

func (j *JobsService) invalidateCompany(ctx context.Context, handle string) {
	if j.cache == nil {
		return
	}
	if err := j.cache.Invalidate(ctx, handle); err != nil {
		j.logger.Warn("company jobs cache invalidation failed", zap.String("company", handle), zap.Error(err))
	}
}

// publish is best effort: the change is already stored.
func (j *JobsService) publish(ctx context.Context, event entity.JobEvent) {
	if j.publisher == nil {
		return
	}
	if err := j.publisher.Publish(ctx, event); err != nil {
		j.logger.Error("failed to publish job event",
			zap.Int64("job_id", event.Job.ID),
			zap.String("action", string(event.Action)),
			zap.Error(err))
	}
}

// IsNotFound reports whether err means the job or company does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repositories.ErrJobNotFound) || errors.Is(err, repositories.ErrCompanyNotFound)
}
