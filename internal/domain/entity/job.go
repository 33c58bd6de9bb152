package entity

import "math"

// MaxSalary is the largest salary storage holds (an INTEGER column).
const MaxSalary = math.MaxInt32

// Job is a posting owned by a company. Salary and Equity are nullable.
type Job struct {
	ID            int64
	Title         string
	Salary        *int64
	Equity        *float64
	CompanyHandle string
}

// JobFilter holds the optional search criteria for listing jobs.
// A nil field is an absent criterion.
type JobFilter struct {
	Title     *string
	MinSalary *int64
	// HasEquity=true keeps jobs with equity > 0; false is the same as absent.
	HasEquity *bool
}
