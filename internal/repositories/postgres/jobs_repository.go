package postgres

import (
	"context"
	"errors"
	"fmt"
	"jobly/internal/domain/entity"
	repositories "jobly/internal/domain/repository"
	"jobly/internal/sqlbuilder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE foreign_key_violation
const foreignKeyViolation = "23503"

type JobsRepository struct {
	db DBTX
}

func NewJobsRepository(db DBTX) *JobsRepository {
	return &JobsRepository{
		db: db,
	}
}

const (
	jobColumns = `id, title, salary, equity, company_handle`

	queryCreateJob = `INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4) RETURNING ` + jobColumns

	queryRead = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	queryList = `SELECT ` + jobColumns + ` FROM jobs`

	queryListByCompany = `SELECT c.handle, j.id, j.title, j.salary, j.equity
		FROM companies c LEFT JOIN jobs j ON j.company_handle = c.handle
		WHERE c.handle = $1 ORDER BY j.title, j.id`

	queryUpdate = `UPDATE jobs SET %s WHERE id = %s RETURNING ` + jobColumns

	queryDelete = `DELETE FROM jobs WHERE id = $1 RETURNING ` + jobColumns
)

func (j *JobsRepository) Create(ctx context.Context, job *entity.Job) error {
	created, err := scanJob(j.db.QueryRow(ctx, queryCreateJob,
		job.Title,
		job.Salary,
		job.Equity,
		job.CompanyHandle,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("%w: %s", repositories.ErrCompanyNotFound, job.CompanyHandle)
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	*job = *created
	return nil
}

func (j *JobsRepository) Read(ctx context.Context, jobID int64) (*entity.Job, error) {
	job, err := scanJob(j.db.QueryRow(ctx, queryRead, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", repositories.ErrJobNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("query row: %w", err)
	}
	return job, nil
}

func (j *JobsRepository) List(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error) {
	clause, args := sqlbuilder.CompileJobFilter(filter)

	rows, err := j.db.Query(ctx, queryList+" "+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*entity.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return jobs, nil
}

func (j *JobsRepository) ListByCompany(ctx context.Context, handle string) ([]*entity.Job, error) {
	rows, err := j.db.Query(ctx, queryListByCompany, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to query company jobs: %w", err)
	}
	defer rows.Close()

	var (
		companyFound bool
		jobs         = []*entity.Job{}
	)
	for rows.Next() {
		var (
			companyHandle string
			id            *int64
			title         *string
			salary        *int64
			equity        *float64
		)

		if err := rows.Scan(
			&companyHandle,
			&id,
			&title,
			&salary,
			&equity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company job: %w", err)
		}
		companyFound = true

		// the outer join yields a single all-NULL job row for a company without jobs
		if id == nil {
			continue
		}

		job := &entity.Job{
			ID:            *id,
			Salary:        salary,
			Equity:        equity,
			CompanyHandle: companyHandle,
		}
		if title != nil {
			job.Title = *title
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if !companyFound {
		return nil, fmt.Errorf("%w: %s", repositories.ErrCompanyNotFound, handle)
	}

	return jobs, nil
}

func (j *JobsRepository) Update(ctx context.Context, jobID int64, changes entity.ChangeSet) (*entity.Job, error) {
	setClause, args, err := sqlbuilder.PartialUpdate(changes, sqlbuilder.JobUpdateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(queryUpdate, setClause, sqlbuilder.Placeholder(len(args)+1))
	args = append(args, jobID)

	job, err := scanJob(j.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", repositories.ErrJobNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (j *JobsRepository) Delete(ctx context.Context, jobID int64) (*entity.Job, error) {
	job, err := scanJob(j.db.QueryRow(ctx, queryDelete, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", repositories.ErrJobNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete job: %w", err)
	}
	return job, nil
}

// scanJob reads one row laid out as jobColumns.
func scanJob(row pgx.Row) (*entity.Job, error) {
	var job entity.Job
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Salary,
		&job.Equity,
		&job.CompanyHandle,
	); err != nil {
		return nil, err
	}
	return &job, nil
}
