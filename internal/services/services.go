package services

import (
	repositories "jobly/internal/domain/repository"

	"go.uber.org/zap"
)

type Services struct {
	log         *zap.Logger
	JobsService *JobsService
}

// NewServices wires the job service. cache and publisher may be nil.
func NewServices(logger *zap.Logger, repo repositories.JobRepositoryInterface, cache repositories.CompanyJobsCacheInterface, publisher repositories.JobPublisherInterface) *Services {
	return &Services{
		log:         logger,
		JobsService: NewJobsService(repo, cache, publisher, logger),
	}
}
