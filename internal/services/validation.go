package services

import (
	"encoding/json"
	"fmt"
	"jobly/internal/domain/entity"
	"math"
	"strings"
)

// ValidationError reports a value the caller supplied with the wrong type or
// out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func validateNewJob(job *entity.Job) error {
	if strings.TrimSpace(job.Title) == "" {
		return invalid("title", "must not be empty")
	}
	if strings.TrimSpace(job.CompanyHandle) == "" {
		return invalid("companyHandle", "must not be empty")
	}
	if job.Salary != nil {
		if err := checkSalary(*job.Salary); err != nil {
			return err
		}
	}
	if job.Equity != nil {
		if err := checkEquity(*job.Equity); err != nil {
			return err
		}
	}
	return nil
}

func checkSalary(salary int64) error {
	if salary < 0 {
		return invalid("salary", "must not be negative")
	}
	if salary > entity.MaxSalary {
		return invalid("salary", fmt.Sprintf("must not exceed %d", entity.MaxSalary))
	}
	return nil
}

func checkEquity(equity float64) error {
	if math.IsNaN(equity) || equity < 0 || equity > 1 {
		return invalid("equity", "must be between 0 and 1")
	}
	return nil
}

// normalizeJobChanges type-checks the known job fields and converts them to
// the values storage expects: title string, salary int64 or nil, equity
// float64 or nil. Other fields pass through untouched so that the allow-list
// check downstream reports them.
func normalizeJobChanges(changes entity.ChangeSet) (entity.ChangeSet, error) {
	out := entity.NewChangeSet()
	for _, field := range changes.Keys() {
		value, _ := changes.Get(field)

		var err error
		switch field {
		case "title":
			value, err = normalizeTitle(value)
		case "salary":
			value, err = normalizeSalary(value)
		case "equity":
			value, err = normalizeEquity(value)
		}
		if err != nil {
			return entity.ChangeSet{}, err
		}
		out.Set(field, value)
	}
	return out, nil
}

func normalizeTitle(value any) (any, error) {
	title, ok := value.(string)
	if !ok {
		return nil, invalid("title", "must be a string")
	}
	if strings.TrimSpace(title) == "" {
		return nil, invalid("title", "must not be empty")
	}
	return title, nil
}

func normalizeSalary(value any) (any, error) {
	var salary int64
	switch v := value.(type) {
	case nil:
		return nil, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, invalid("salary", "must be an integer")
		}
		salary = n
	case int:
		salary = int64(v)
	case int64:
		salary = v
	default:
		return nil, invalid("salary", "must be an integer")
	}

	if err := checkSalary(salary); err != nil {
		return nil, err
	}
	return salary, nil
}

func normalizeEquity(value any) (any, error) {
	var equity float64
	switch v := value.(type) {
	case nil:
		return nil, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, invalid("equity", "must be a number")
		}
		equity = f
	case float64:
		equity = v
	default:
		return nil, invalid("equity", "must be a number")
	}

	if err := checkEquity(equity); err != nil {
		return nil, err
	}
	return equity, nil
}
