package routes

import (
	"net/http"

	"jobly/internal/domain/handler"

	"github.com/gin-gonic/gin"
)

func SetupJobsRoutes(router *gin.RouterGroup, jobHandler handler.JobsHandlerInterface) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.GetJobs)
		jobs.GET("/:job_id", jobHandler.GetJobByID)
		jobs.PATCH("/:job_id", jobHandler.UpdateJob)
		jobs.DELETE("/:job_id", jobHandler.DeleteJob)
	}
}

func SetupCompaniesRoutes(router *gin.RouterGroup, jobHandler handler.JobsHandlerInterface) {
	companies := router.Group("/companies")
	{
		companies.GET("/:handle/jobs", jobHandler.GetCompanyJobs)
	}
}

func SetupHealthRoutes(router gin.IRoutes) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
