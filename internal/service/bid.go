package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-management-api/internal/common"
	"job-management-api/internal/entity"
	"job-management-api/internal/repo"
	"job-management-api/internal/repo/repo_errors"
	"job-management-api/pkg/logging"
)

type BidService struct {
	bidRepo repo.Bid
	jobRepo repo.Job
	ids     IdentityAssigner
	log     *logging.Logger
}

func NewBidService(repos *repo.Repositories, ids IdentityAssigner, log *logging.Logger) *BidService {
	return &BidService{
		bidRepo: repos.Bid,
		jobRepo: repos.Job,
		ids:     ids,
		log:     log,
	}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (s *BidService) SubmitBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" && strings.TrimSpace(input.Phone) == "" {
		return nil, fmt.Errorf("%w: email or phone", ErrValidation)
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	input.Status = common.Pending
	id := s.ids.NewID()
	if err := s.bidRepo.CreateBid(ctx, id, input); err != nil {
		return nil, storeErr(err)
	}

	bid, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, storeErr(err)
	}

	return mapBid(bid), nil
}

func (s *BidService) GetBid(ctx context.Context, bidId string) (*entity.BidOutputModel, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, storeErr(err)
	}

	return mapBid(bid), nil
}

func (s *BidService) GetBids(ctx context.Context, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	bids, err := s.bidRepo.GetBids(ctx, pg)
	if err != nil {
		return nil, storeErr(err)
	}

	return mapBids(bids), nil
}

// SetBidStatus drives the pending → accepted | rejected machine. Accepting
// requires a non-empty date and derives exactly one job. Re-accepting an
// already accepted bid with the same date is the retry path for a failed
// derivation: the bid is left alone and the job is created only if missing.
func (s *BidService) SetBidStatus(ctx context.Context, bidId string, newStatus string, acceptedDate string) (*entity.BidOutputModel, error) {
	if !common.IsBidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, newStatus)
	}

	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, storeErr(err)
	}

	if newStatus == bid.Status {
		if newStatus != common.Accepted {
			return mapBid(bid), nil
		}
		if acceptedDate != bid.AcceptedDate {
			return nil, fmt.Errorf("%w: bid already accepted for %s", ErrInvalidTransition, bid.AcceptedDate)
		}
		if err := s.ensureDerivedJob(ctx, bid); err != nil {
			return nil, err
		}

		return mapBid(bid), nil
	}

	if bid.Status != common.Pending {
		return nil, fmt.Errorf("%w: %s bid can not become %s", ErrInvalidTransition, bid.Status, newStatus)
	}

	if newStatus == common.Accepted && strings.TrimSpace(acceptedDate) == "" {
		return nil, fmt.Errorf("%w: accepting requires a date", ErrInvalidTransition)
	}
	if newStatus != common.Accepted {
		acceptedDate = ""
	}

	if err := s.bidRepo.SetBidStatusById(ctx, bidId, newStatus, acceptedDate); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, storeErr(err)
	}
	bid.Status = newStatus
	bid.AcceptedDate = acceptedDate

	if newStatus == common.Accepted {
		// The bid is already persisted as accepted; a failure here leaves
		// the derivation missing and the caller retries via re-accept.
		if err := s.ensureDerivedJob(ctx, bid); err != nil {
			s.log.Error("job derivation failed after bid acceptance", "bidId", bidId, "err", err)
			return nil, err
		}
	}

	return mapBid(bid), nil
}

func (s *BidService) ensureDerivedJob(ctx context.Context, bid *entity.Bid) error {
	_, err := s.jobRepo.GetJobByName(ctx, bid.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return storeErr(err)
	}

	job := &entity.CreateJobInput{
		Id:      s.ids.NewID(),
		Name:    bid.Name,
		Email:   bid.Email,
		Phone:   bid.Phone,
		Address: bid.Address,
		Date:    bid.AcceptedDate,
		Price:   bid.Amount,
		Info:    bid.Notes,
	}
	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return storeErr(err)
	}
	s.log.Info("job derived from accepted bid", "bidId", bid.Id.String(), "jobId", job.Id.String())

	return nil
}

func (s *BidService) EditBid(ctx context.Context, bidId string, input *entity.EditBidInput) (*entity.BidOutputModel, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrValidation)
	}
	if input.Amount != nil && *input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if *input == (entity.EditBidInput{}) {
		return nil, fmt.Errorf("%w: no new values", ErrValidation)
	}

	err := s.bidRepo.EditBidById(ctx, bidId, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, storeErr(err)
	}

	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, storeErr(err)
	}

	return mapBid(bid), nil
}

// DeleteBid is unconditional and never cascades to a derived job.
func (s *BidService) DeleteBid(ctx context.Context, bidId string) error {
	if err := s.bidRepo.DeleteBidById(ctx, bidId); err != nil {
		return storeErr(err)
	}

	return nil
}
