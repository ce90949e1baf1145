package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-management-api/internal/entity"
	"job-management-api/internal/repo"
	"job-management-api/internal/repo/repo_errors"
)

type JobService struct {
	jobRepo repo.Job
	ids     IdentityAssigner
}

func NewJobService(repos *repo.Repositories, ids IdentityAssigner) *JobService {
	return &JobService{
		jobRepo: repos.Job,
		ids:     ids,
	}
}

// CreateJob covers manual entry. The customer name is the natural key, so
// a clash with any existing job is rejected before the write.
func (s *JobService) CreateJob(ctx context.Context, input *entity.CreateJobInput) (*entity.JobOutputModel, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	_, err := s.jobRepo.GetJobByName(ctx, input.Name)
	if err == nil {
		return nil, ErrDuplicateKey
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return nil, storeErr(err)
	}

	input.Id = s.ids.NewID()
	if err := s.jobRepo.CreateJob(ctx, input); err != nil {
		return nil, storeErr(err)
	}

	job, err := s.jobRepo.GetJobById(ctx, input.Id.String())
	if err != nil {
		return nil, storeErr(err)
	}

	return mapJob(job), nil
}

func (s *JobService) GetJob(ctx context.Context, jobId string) (*entity.JobOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, storeErr(err)
	}

	return mapJob(job), nil
}

func (s *JobService) GetJobs(ctx context.Context, includeArchived bool, pg *entity.PaginationInput) ([]entity.JobOutputModel, error) {
	jobs, err := s.jobRepo.GetJobs(ctx, includeArchived, pg)
	if err != nil {
		return nil, storeErr(err)
	}

	return mapJobs(jobs), nil
}

func (s *JobService) EditJob(ctx context.Context, jobId string, input *entity.EditJobInput) (*entity.JobOutputModel, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if *input == (entity.EditJobInput{}) {
		return nil, fmt.Errorf("%w: no new values", ErrValidation)
	}

	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, storeErr(err)
	}

	// the resulting state must honor "archived implies completed",
	// whether a flag comes from the edit or carries over unchanged
	completed := job.Completed
	if input.Completed != nil {
		completed = *input.Completed
	}
	archived := job.Archived
	if input.Archived != nil {
		archived = *input.Archived
	}
	if archived && !completed {
		return nil, fmt.Errorf("%w: job can not be archived while incomplete", ErrInvalidState)
	}

	if input.Name != nil && *input.Name != job.Name {
		other, err := s.jobRepo.GetJobByName(ctx, *input.Name)
		if err == nil && other.Id != job.Id {
			return nil, ErrDuplicateKey
		}
		if err != nil && !errors.Is(err, repo_errors.ErrNotFound) {
			return nil, storeErr(err)
		}
	}

	if err := s.jobRepo.EditJobById(ctx, jobId, input); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, storeErr(err)
	}

	job, err = s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		return nil, storeErr(err)
	}

	return mapJob(job), nil
}

// MarkCompleted is idempotent: completing a completed job changes nothing.
func (s *JobService) MarkCompleted(ctx context.Context, jobId string) (*entity.JobOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, storeErr(err)
	}

	if job.Completed {
		return mapJob(job), nil
	}

	completed := true
	if err := s.jobRepo.EditJobById(ctx, jobId, &entity.EditJobInput{Completed: &completed}); err != nil {
		return nil, storeErr(err)
	}
	job.Completed = true

	return mapJob(job), nil
}

// ArchiveJob models "done and filed", not cancellation: an incomplete job
// can not be archived.
func (s *JobService) ArchiveJob(ctx context.Context, jobId string) (*entity.JobOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, storeErr(err)
	}

	if !job.Completed {
		return nil, fmt.Errorf("%w: job must be completed before archiving", ErrInvalidState)
	}
	if job.Archived {
		return mapJob(job), nil
	}

	archived := true
	if err := s.jobRepo.EditJobById(ctx, jobId, &entity.EditJobInput{Archived: &archived}); err != nil {
		return nil, storeErr(err)
	}
	job.Archived = true

	return mapJob(job), nil
}

func (s *JobService) DeleteJob(ctx context.Context, jobId string) error {
	if err := s.jobRepo.DeleteJobById(ctx, jobId); err != nil {
		return storeErr(err)
	}

	return nil
}

// CompletedJobsValue sums the price of completed, non-archived jobs.
func (s *JobService) CompletedJobsValue(ctx context.Context) (float64, error) {
	jobs, err := s.jobRepo.GetAllJobs(ctx)
	if err != nil {
		return 0, storeErr(err)
	}

	var total float64
	for _, job := range jobs {
		if job.Completed && !job.Archived {
			total += job.Price
		}
	}

	return total, nil
}
