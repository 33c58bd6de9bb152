package dto

import (
	"jobly/internal/domain/entity"
)

// JobCreate is the body of POST /jobs
type JobCreate struct {
	Title         string   `json:"title" binding:"required"`
	Salary        *int64   `json:"salary,omitempty"`
	Equity        *float64 `json:"equity,omitempty"`
	CompanyHandle string   `json:"companyHandle" binding:"required"`
}

func (c JobCreate) ToEntity() *entity.Job {
	return &entity.Job{
		Title:         c.Title,
		Salary:        c.Salary,
		Equity:        c.Equity,
		CompanyHandle: c.CompanyHandle,
	}
}

type JobDTO struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Salary        *int64   `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

func FromJob(job *entity.Job) JobDTO {
	return JobDTO{
		ID:            job.ID,
		Title:         job.Title,
		Salary:        job.Salary,
		Equity:        job.Equity,
		CompanyHandle: job.CompanyHandle,
	}
}

func FromJobs(jobs []*entity.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, FromJob(job))
	}
	return out
}

func (d JobDTO) ToEntity() *entity.Job {
	return &entity.Job{
		ID:            d.ID,
		Title:         d.Title,
		Salary:        d.Salary,
		Equity:        d.Equity,
		CompanyHandle: d.CompanyHandle,
	}
}

// JobEventDTO is the wire form of entity.JobEvent
type JobEventDTO struct {
	Action     string            `json:"action"`
	Job        JobDTO            `json:"job"`
	Changes    *entity.ChangeSet `json:"changes,omitempty"`
	OccurredAt int64             `json:"occurredAt"`
}

func FromJobEvent(event entity.JobEvent) JobEventDTO {
	return JobEventDTO{
		Action:     string(event.Action),
		Job:        FromJob(event.Job),
		Changes:    event.Changes,
		OccurredAt: event.OccurredAt.UnixMilli(),
	}
}
