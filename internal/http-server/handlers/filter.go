package handlers

import (
	"fmt"
	"strconv"

	"jobly/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// parseJobFilter reads the optional listing criteria from the query string.
// A malformed value is an error, never treated as absent. An empty title is absent.
func parseJobFilter(c *gin.Context) (entity.JobFilter, error) {
	var filter entity.JobFilter

	if title := c.Query("title"); title != "" {
		filter.Title = &title
	}

	if raw, ok := c.GetQuery("minSalary"); ok {
		minSalary, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || minSalary < 0 || minSalary > entity.MaxSalary {
			return entity.JobFilter{}, fmt.Errorf("minSalary must be an integer between 0 and %d, got %q", entity.MaxSalary, raw)
		}
		filter.MinSalary = &minSalary
	}

	if raw, ok := c.GetQuery("hasEquity"); ok {
		hasEquity, err := strconv.ParseBool(raw)
		if err != nil {
			return entity.JobFilter{}, fmt.Errorf("hasEquity must be true or false, got %q", raw)
		}
		filter.HasEquity = &hasEquity
	}

	return filter, nil
}
