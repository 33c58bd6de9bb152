package handlers

import (
	"errors"
	"net/http"

	"jobly/internal/services"
	"jobly/internal/sqlbuilder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{Message: message, Status: status}})
}

// respondError maps service errors to HTTP responses.
func (h *JobsHandler) respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		abortWithError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, sqlbuilder.ErrInvalidChangeSet):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		h.log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
