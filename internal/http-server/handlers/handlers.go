package handlers

import (
	domainservice "jobly/internal/domain/service"

	"go.uber.org/zap"
)

type Handlers struct {
	log         *zap.Logger
	JobsHandler *JobsHandler
}

func NewHandlers(logger *zap.Logger, jobService domainservice.JobServiceInterface) *Handlers {
	return &Handlers{
		log:         logger,
		JobsHandler: NewJobsHandler(logger, jobService),
	}
}
