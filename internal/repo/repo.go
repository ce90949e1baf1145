package repo

import (
	"context"
	"job-management-api/internal/entity"
	"job-management-api/internal/repo/pgdb"
	"job-management-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type Bid interface {
	CreateBid(ctx context.Context, id uuid.UUID, input *entity.CreateBidInput) error
	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetBids(ctx context.Context, pg *entity.PaginationInput) ([]entity.Bid, error)
	EditBidById(ctx context.Context, id string, input *entity.EditBidInput) error
	SetBidStatusById(ctx context.Context, id string, status string, acceptedDate string) error
	DeleteBidById(ctx context.Context, id string) error
}

type Job interface {
	CreateJob(ctx context.Context, input *entity.CreateJobInput) error
	GetJobById(ctx context.Context, id string) (*entity.Job, error)
	GetJobByName(ctx context.Context, name string) (*entity.Job, error)
	GetJobs(ctx context.Context, includeArchived bool, pg *entity.PaginationInput) ([]entity.Job, error)
	GetAllJobs(ctx context.Context) ([]entity.Job, error)
	EditJobById(ctx context.Context, id string, input *entity.EditJobInput) error
	DeleteJobById(ctx context.Context, id string) error
}

type ShareLink interface {
	CreateShare(ctx context.Context, share *entity.ShareLink) error
	GetShareById(ctx context.Context, id string) (*entity.ShareLink, error)
	SetShareCommentById(ctx context.Context, id string, comment string) error
	DeleteShareById(ctx context.Context, id string) error
}

type Repositories struct {
	Diagnostics
	Bid
	Job
	ShareLink
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Bid:         pgdb.NewBidRepo(p),
		Job:         pgdb.NewJobRepo(p),
		ShareLink:   pgdb.NewShareLinkRepo(p),
	}
}
