package service

import (
	"context"
	"fmt"
	"time"

	"job-management-api/internal/entity"
	"job-management-api/internal/repo"
	"job-management-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// in-memory repositories mirroring the pgdb partial-update semantics

type fakeBidRepo struct {
	bids map[string]entity.Bid
}

func newFakeBidRepo() *fakeBidRepo {
	return &fakeBidRepo{bids: make(map[string]entity.Bid)}
}

func (r *fakeBidRepo) CreateBid(_ context.Context, id uuid.UUID, input *entity.CreateBidInput) error {
	r.bids[id.String()] = entity.Bid{
		Id: id, Name: input.Name, Email: input.Email, Phone: input.Phone,
		Address: input.Address, Amount: input.Amount, StartDate: input.StartDate,
		Duration: input.Duration, Notes: input.Notes, Status: input.Status,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	return nil
}

func (r *fakeBidRepo) GetBidById(_ context.Context, id string) (*entity.Bid, error) {
	bid, ok := r.bids[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &bid, nil
}

func (r *fakeBidRepo) GetBids(_ context.Context, _ *entity.PaginationInput) ([]entity.Bid, error) {
	bids := make([]entity.Bid, 0, len(r.bids))
	for _, bid := range r.bids {
		bids = append(bids, bid)
	}

	return bids, nil
}

func (r *fakeBidRepo) EditBidById(_ context.Context, id string, input *entity.EditBidInput) error {
	bid, ok := r.bids[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if input.Name != nil {
		bid.Name = *input.Name
	}
	if input.Email != nil {
		bid.Email = *input.Email
	}
	if input.Phone != nil {
		bid.Phone = *input.Phone
	}
	if input.Address != nil {
		bid.Address = *input.Address
	}
	if input.Amount != nil {
		bid.Amount = *input.Amount
	}
	if input.StartDate != nil {
		bid.StartDate = *input.StartDate
	}
	if input.Duration != nil {
		bid.Duration = *input.Duration
	}
	if input.Notes != nil {
		bid.Notes = *input.Notes
	}
	r.bids[id] = bid

	return nil
}

func (r *fakeBidRepo) SetBidStatusById(_ context.Context, id string, status string, acceptedDate string) error {
	bid, ok := r.bids[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	bid.Status = status
	bid.AcceptedDate = acceptedDate
	r.bids[id] = bid

	return nil
}

func (r *fakeBidRepo) DeleteBidById(_ context.Context, id string) error {
	delete(r.bids, id)

	return nil
}

type fakeJobRepo struct {
	jobs map[string]entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]entity.Job)}
}

func (r *fakeJobRepo) CreateJob(_ context.Context, input *entity.CreateJobInput) error {
	r.jobs[input.Id.String()] = entity.Job{
		Id: input.Id, Name: input.Name, Email: input.Email, Phone: input.Phone,
		Address: input.Address, Date: input.Date, Info: input.Info, Price: input.Price,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	return nil
}

func (r *fakeJobRepo) GetJobById(_ context.Context, id string) (*entity.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &job, nil
}

func (r *fakeJobRepo) GetJobByName(_ context.Context, name string) (*entity.Job, error) {
	for _, job := range r.jobs {
		if job.Name == name {
			return &job, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *fakeJobRepo) GetJobs(_ context.Context, includeArchived bool, _ *entity.PaginationInput) ([]entity.Job, error) {
	jobs := make([]entity.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if !includeArchived && job.Archived {
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (r *fakeJobRepo) GetAllJobs(_ context.Context) ([]entity.Job, error) {
	jobs := make([]entity.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (r *fakeJobRepo) EditJobById(_ context.Context, id string, input *entity.EditJobInput) error {
	job, ok := r.jobs[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if input.Name != nil {
		job.Name = *input.Name
	}
	if input.Email != nil {
		job.Email = *input.Email
	}
	if input.Phone != nil {
		job.Phone = *input.Phone
	}
	if input.Address != nil {
		job.Address = *input.Address
	}
	if input.Date != nil {
		job.Date = *input.Date
	}
	if input.Info != nil {
		job.Info = *input.Info
	}
	if input.Price != nil {
		job.Price = *input.Price
	}
	if input.Completed != nil {
		job.Completed = *input.Completed
	}
	if input.Archived != nil {
		job.Archived = *input.Archived
	}
	r.jobs[id] = job

	return nil
}

func (r *fakeJobRepo) DeleteJobById(_ context.Context, id string) error {
	delete(r.jobs, id)

	return nil
}

type fakeShareRepo struct {
	shares map[string]entity.ShareLink
}

func newFakeShareRepo() *fakeShareRepo {
	return &fakeShareRepo{shares: make(map[string]entity.ShareLink)}
}

func (r *fakeShareRepo) CreateShare(_ context.Context, share *entity.ShareLink) error {
	stored := *share
	stored.Snapshot = append([]entity.Job(nil), share.Snapshot...)
	r.shares[share.Id.String()] = stored

	return nil
}

func (r *fakeShareRepo) GetShareById(_ context.Context, id string) (*entity.ShareLink, error) {
	share, ok := r.shares[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &share, nil
}

func (r *fakeShareRepo) SetShareCommentById(_ context.Context, id string, comment string) error {
	share, ok := r.shares[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	share.Comment = comment
	r.shares[id] = share

	return nil
}

func (r *fakeShareRepo) DeleteShareById(_ context.Context, id string) error {
	delete(r.shares, id)

	return nil
}

// seqAssigner hands out predictable ids
type seqAssigner struct {
	n int
}

func (a *seqAssigner) NewID() uuid.UUID {
	a.n++

	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", a.n))
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type testEnv struct {
	bidRepo   *fakeBidRepo
	jobRepo   *fakeJobRepo
	shareRepo *fakeShareRepo
	clock     *fakeClock
	repos     *repo.Repositories
	ids       *seqAssigner
}

func newTestEnv() *testEnv {
	env := &testEnv{
		bidRepo:   newFakeBidRepo(),
		jobRepo:   newFakeJobRepo(),
		shareRepo: newFakeShareRepo(),
		clock:     &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
		ids:       &seqAssigner{},
	}
	env.repos = &repo.Repositories{
		Bid:       env.bidRepo,
		Job:       env.jobRepo,
		ShareLink: env.shareRepo,
	}

	return env
}
