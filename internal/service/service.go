package service

import (
	"context"
	"time"

	"job-management-api/internal/entity"
	"job-management-api/internal/repo"
	"job-management-api/pkg/logging"
)

type Diagnostics interface {
	Ping() error
}

type Bid interface {
	SubmitBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	GetBid(ctx context.Context, bidId string) (*entity.BidOutputModel, error)
	GetBids(ctx context.Context, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)

	SetBidStatus(ctx context.Context, bidId string, newStatus string, acceptedDate string) (*entity.BidOutputModel, error)
	EditBid(ctx context.Context, bidId string, input *entity.EditBidInput) (*entity.BidOutputModel, error)
	DeleteBid(ctx context.Context, bidId string) error
}

type Job interface {
	CreateJob(ctx context.Context, input *entity.CreateJobInput) (*entity.JobOutputModel, error)
	GetJob(ctx context.Context, jobId string) (*entity.JobOutputModel, error)
	GetJobs(ctx context.Context, includeArchived bool, pg *entity.PaginationInput) ([]entity.JobOutputModel, error)

	EditJob(ctx context.Context, jobId string, input *entity.EditJobInput) (*entity.JobOutputModel, error)
	MarkCompleted(ctx context.Context, jobId string) (*entity.JobOutputModel, error)
	ArchiveJob(ctx context.Context, jobId string) (*entity.JobOutputModel, error)
	DeleteJob(ctx context.Context, jobId string) error

	CompletedJobsValue(ctx context.Context) (float64, error)
}

type Reconcile interface {
	ImportJobs(ctx context.Context, rows []entity.ImportRow, mode string) (*entity.ImportSummary, error)
	ExportJobs(ctx context.Context, includeArchived bool) ([]entity.Job, error)
}

type Share interface {
	CreateShare(ctx context.Context, jobId string, ttl time.Duration) (*entity.ShareOutputModel, error)
	CreateDayShare(ctx context.Context, day string, ttl time.Duration) (*entity.ShareOutputModel, error)
	ResolveShare(ctx context.Context, shareId string) (*entity.ShareOutputModel, error)
	SetShareComment(ctx context.Context, shareId string, comment string) error
}

type Services struct {
	Diagnostics Diagnostics
	Bid         Bid
	Job         Job
	Reconcile   Reconcile
	Share       Share
}

func NewServices(repos *repo.Repositories, log *logging.Logger) *Services {
	ids := UUIDAssigner{}

	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Bid:         NewBidService(repos, ids, log),
		Job:         NewJobService(repos, ids),
		Reconcile:   NewReconcileService(repos, ids, log),
		Share:       NewShareService(repos, ids, time.Now),
	}
}
