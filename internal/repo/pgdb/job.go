package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"job-management-api/internal/entity"
	"job-management-api/internal/repo/repo_errors"
	"job-management-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type JobRepo struct {
	*postgres.Postgres
}

func NewJobRepo(pgdb *postgres.Postgres) *JobRepo {
	return &JobRepo{pgdb}
}

const jobColumns = "id, name, email, phone, address, date, info, price, completed, archived, created_at"

func (r *JobRepo) CreateJob(ctx context.Context, input *entity.CreateJobInput) error {
	createJobSql, args, _ := r.SqlBuilder.
		Insert("job").
		Columns("id", "name", "email", "phone", "address", "date", "info", "price", "completed", "archived").
		Values(input.Id, input.Name, input.Email, input.Phone, input.Address,
			input.Date, input.Info, input.Price, false, false).
		ToSql()

	_, err := r.Database.ExecContext(ctx, createJobSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func scanJob(row interface{ Scan(...any) error }) (*entity.Job, error) {
	var job entity.Job
	var createdAt time.Time
	err := row.Scan(&job.Id, &job.Name, &job.Email, &job.Phone, &job.Address,
		&job.Date, &job.Info, &job.Price, &job.Completed, &job.Archived, &createdAt)
	if err != nil {
		return &job, err
	}
	job.CreatedAt = createdAt.Format(time.RFC3339)

	return &job, nil
}

func (r *JobRepo) GetJobById(ctx context.Context, id string) (*entity.Job, error) {
	getJobSql, args, _ := r.SqlBuilder.
		Select(jobColumns).
		From("job").
		Where("id = ?", id).
		ToSql()

	job, err := scanJob(r.Database.QueryRowContext(ctx, getJobSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return job, repo_errors.ErrNotFound
		}

		return job, err
	}

	return job, nil
}

func (r *JobRepo) GetJobByName(ctx context.Context, name string) (*entity.Job, error) {
	getJobSql, args, _ := r.SqlBuilder.
		Select(jobColumns).
		From("job").
		Where("name = ?", name).
		ToSql()

	job, err := scanJob(r.Database.QueryRowContext(ctx, getJobSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return job, repo_errors.ErrNotFound
		}

		return job, err
	}

	return job, nil
}

func (r *JobRepo) GetJobs(ctx context.Context, includeArchived bool, pg *entity.PaginationInput) ([]entity.Job, error) {
	builder := r.SqlBuilder.
		Select(jobColumns).
		From("job")

	if !includeArchived {
		builder = builder.Where("archived = ?", false)
	}

	getJobsSql, args, _ := builder.
		OrderBy("date ASC, name ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryJobs(ctx, getJobsSql, args)
}

func (r *JobRepo) GetAllJobs(ctx context.Context) ([]entity.Job, error) {
	scanSql, args, _ := r.SqlBuilder.
		Select(jobColumns).
		From("job").
		OrderBy("name ASC").
		ToSql()

	return r.queryJobs(ctx, scanSql, args)
}

func (r *JobRepo) queryJobs(ctx context.Context, query string, args []any) ([]entity.Job, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]entity.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return jobs, err
		}
		jobs = append(jobs, *job)
	}
	if err = rows.Err(); err != nil {
		return jobs, err
	}

	return jobs, nil
}

func (r *JobRepo) EditJobById(ctx context.Context, id string, input *entity.EditJobInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	builder := r.SqlBuilder.Update("job").Where("id = ?", uuidForm)
	if input.Name != nil {
		builder = builder.Set("name", *input.Name)
	}
	if input.Email != nil {
		builder = builder.Set("email", *input.Email)
	}
	if input.Phone != nil {
		builder = builder.Set("phone", *input.Phone)
	}
	if input.Address != nil {
		builder = builder.Set("address", *input.Address)
	}
	if input.Date != nil {
		builder = builder.Set("date", *input.Date)
	}
	if input.Info != nil {
		builder = builder.Set("info", *input.Info)
	}
	if input.Price != nil {
		builder = builder.Set("price", *input.Price)
	}
	if input.Completed != nil {
		builder = builder.Set("completed", *input.Completed)
	}
	if input.Archived != nil {
		builder = builder.Set("archived", *input.Archived)
	}

	editJobSql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	res, err := r.Database.ExecContext(ctx, editJobSql, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *JobRepo) DeleteJobById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	deleteJobSql, args, _ := r.SqlBuilder.
		Delete("job").
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.ExecContext(ctx, deleteJobSql, args...)
	if err != nil {
		return err
	}

	return nil
}
