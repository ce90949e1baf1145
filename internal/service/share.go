package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-management-api/internal/entity"
	"job-management-api/internal/repo"
	"job-management-api/internal/repo/repo_errors"
)

// ShareService issues capability tokens: possession of the share id is the
// only authorization on the resolve and comment paths. Expiry is checked
// lazily at read time; no background sweep exists.
type ShareService struct {
	shareRepo repo.ShareLink
	jobRepo   repo.Job
	ids       IdentityAssigner
	now       func() time.Time
}

func NewShareService(repos *repo.Repositories, ids IdentityAssigner, now func() time.Time) *ShareService {
	return &ShareService{
		shareRepo: repos.ShareLink,
		jobRepo:   repos.Job,
		ids:       ids,
		now:       now,
	}
}

// CreateShare snapshots the job as it is right now; later edits to the job
// never show through an already issued link.
func (s *ShareService) CreateShare(ctx context.Context, jobId string, ttl time.Duration) (*entity.ShareOutputModel, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive", ErrValidation)
	}

	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, storeErr(err)
	}

	share := &entity.ShareLink{
		Id:        s.ids.NewID(),
		Snapshot:  []entity.Job{*job},
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.shareRepo.CreateShare(ctx, share); err != nil {
		return nil, storeErr(err)
	}

	return mapShare(share), nil
}

// CreateDayShare snapshots every active job scheduled on the given day.
func (s *ShareService) CreateDayShare(ctx context.Context, day string, ttl time.Duration) (*entity.ShareOutputModel, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive", ErrValidation)
	}
	if day == "" {
		return nil, fmt.Errorf("%w: day", ErrValidation)
	}

	jobs, err := s.jobRepo.GetAllJobs(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	snapshot := make([]entity.Job, 0)
	for _, job := range jobs {
		if job.Date == day && !job.Archived {
			snapshot = append(snapshot, job)
		}
	}

	share := &entity.ShareLink{
		Id:        s.ids.NewID(),
		Day:       day,
		Snapshot:  snapshot,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.shareRepo.CreateShare(ctx, share); err != nil {
		return nil, storeErr(err)
	}

	return mapShare(share), nil
}

// ResolveShare treats an expired link exactly like one that never existed.
func (s *ShareService) ResolveShare(ctx context.Context, shareId string) (*entity.ShareOutputModel, error) {
	share, err := s.getLive(ctx, shareId)
	if err != nil {
		return nil, err
	}

	return mapShare(share), nil
}

func (s *ShareService) SetShareComment(ctx context.Context, shareId string, comment string) error {
	if _, err := s.getLive(ctx, shareId); err != nil {
		return err
	}

	if err := s.shareRepo.SetShareCommentById(ctx, shareId, comment); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrShareNotFound
		}

		return storeErr(err)
	}

	return nil
}

func (s *ShareService) getLive(ctx context.Context, shareId string) (*entity.ShareLink, error) {
	share, err := s.shareRepo.GetShareById(ctx, shareId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrShareNotFound
		}

		return nil, storeErr(err)
	}

	if s.now().After(share.ExpiresAt) {
		// opportunistic cleanup; correctness never depends on it
		_ = s.shareRepo.DeleteShareById(ctx, shareId)

		return nil, ErrShareNotFound
	}

	return share, nil
}
