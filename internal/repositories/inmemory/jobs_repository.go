package inmemory

import (
	"context"
	"fmt"
	"jobly/internal/domain/entity"
	repositories "jobly/internal/domain/repository"
	"jobly/internal/sqlbuilder"
	"sort"
	"strings"
	"sync"
)

// JobsRepository keeps jobs in process memory. It follows the same contracts
// as the postgres repository and is used for local runs and tests.
type JobsRepository struct {
	jobs      map[int64]*entity.Job
	companies map[string]struct{}
	lastID    int64
	mu        sync.RWMutex
}

func NewJobsRepository(companies ...string) *JobsRepository {
	r := &JobsRepository{
		jobs:      make(map[int64]*entity.Job),
		companies: make(map[string]struct{}, len(companies)),
	}
	for _, handle := range companies {
		r.companies[handle] = struct{}{}
	}
	return r
}

// AddCompany registers a handle jobs may reference.
func (j *JobsRepository) AddCompany(handle string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.companies[handle] = struct{}{}
}

func (j *JobsRepository) Create(ctx context.Context, job *entity.Job) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.companies[job.CompanyHandle]; !ok {
		return fmt.Errorf("%w: %s", repositories.ErrCompanyNotFound, job.CompanyHandle)
	}

	j.lastID++
	job.ID = j.lastID
	j.jobs[job.ID] = cloneJob(job)

	return nil
}

func (j *JobsRepository) Read(ctx context.Context, jobID int64) (*entity.Job, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	job, ok := j.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", repositories.ErrJobNotFound, jobID)
	}

	return cloneJob(job), nil
}

func (j *JobsRepository) List(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]*entity.Job, 0, len(j.jobs))
	for _, job := range j.jobs {
		if matches(job, filter) {
			out = append(out, cloneJob(job))
		}
	}
	sortJobs(out)

	return out, nil
}

func (j *JobsRepository) ListByCompany(ctx context.Context, handle string) ([]*entity.Job, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if _, ok := j.companies[handle]; !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrCompanyNotFound, handle)
	}

	out := []*entity.Job{}
	for _, job := range j.jobs {
		if job.CompanyHandle == handle {
			out = append(out, cloneJob(job))
		}
	}
	sortJobs(out)

	return out, nil
}

func (j *JobsRepository) Update(ctx context.Context, jobID int64, changes entity.ChangeSet) (*entity.Job, error) {
	// same allow-list as the SQL store; the fragment itself is not needed here
	if _, _, err := sqlbuilder.PartialUpdate(changes, sqlbuilder.JobUpdateColumns); err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	stored, ok := j.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", repositories.ErrJobNotFound, jobID)
	}

	updated := cloneJob(stored)
	for _, field := range changes.Keys() {
		value, _ := changes.Get(field)
		if err := apply(updated, field, value); err != nil {
			return nil, err
		}
	}
	j.jobs[jobID] = updated

	return cloneJob(updated), nil
}

func (j *JobsRepository) Delete(ctx context.Context, jobID int64) (*entity.Job, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	job, ok := j.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", repositories.ErrJobNotFound, jobID)
	}
	delete(j.jobs, jobID)

	return job, nil
}

// matches mirrors the predicates of sqlbuilder.CompileJobFilter.
func matches(job *entity.Job, f entity.JobFilter) bool {
	if f.Title != nil && !strings.Contains(strings.ToLower(job.Title), strings.ToLower(*f.Title)) {
		return false
	}
	if f.MinSalary != nil && (job.Salary == nil || *job.Salary < *f.MinSalary) {
		return false
	}
	if f.HasEquity != nil && *f.HasEquity && (job.Equity == nil || *job.Equity <= 0) {
		return false
	}
	return true
}

func apply(job *entity.Job, field string, value any) error {
	switch field {
	case "title":
		title, ok := value.(string)
		if !ok {
			return fmt.Errorf("title: unsupported value type %T", value)
		}
		job.Title = title
	case "salary":
		switch v := value.(type) {
		case nil:
			job.Salary = nil
		case int64:
			job.Salary = &v
		default:
			return fmt.Errorf("salary: unsupported value type %T", value)
		}
	case "equity":
		switch v := value.(type) {
		case nil:
			job.Equity = nil
		case float64:
			job.Equity = &v
		default:
			return fmt.Errorf("equity: unsupported value type %T", value)
		}
	}
	return nil
}

// sortJobs orders by title bytes, matching the "C" collation of jobs.title.
func sortJobs(jobs []*entity.Job) {
	sort.Slice(jobs, func(a, b int) bool {
		if jobs[a].Title != jobs[b].Title {
			return jobs[a].Title < jobs[b].Title
		}
		return jobs[a].ID < jobs[b].ID
	})
}

func cloneJob(job *entity.Job) *entity.Job {
	out := *job
	if job.Salary != nil {
		salary := *job.Salary
		out.Salary = &salary
	}
	if job.Equity != nil {
		equity := *job.Equity
		out.Equity = &equity
	}
	return &out
}
