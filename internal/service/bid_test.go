package service

import (
	"context"
	"testing"

	"job-management-api/internal/common"
	"job-management-api/internal/entity"
	"job-management-api/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBidServiceUnderTest(env *testEnv) *BidService {
	return NewBidService(env.repos, env.ids, logging.Nop())
}

func submitTestBid(t *testing.T, s *BidService) *entity.BidOutputModel {
	t.Helper()
	bid, err := s.SubmitBid(context.Background(), &entity.CreateBidInput{
		Name:    "A",
		Email:   "a@x.com",
		Address: "1 Main",
		Amount:  500,
	})
	require.NoError(t, err)

	return bid
}

func TestSubmitBid_StartsPending(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)

	bid := submitTestBid(t, s)

	assert.Equal(t, common.Pending, bid.Status)
	assert.Empty(t, bid.AcceptedDate)
	assert.NotEmpty(t, bid.Id)
}

func TestSubmitBid_RequiresContact(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)

	_, err := s.SubmitBid(context.Background(), &entity.CreateBidInput{Name: "A"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, env.bidRepo.bids, "nothing should be persisted")
}

func TestSetBidStatus_AcceptWithoutDateFails(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	stored := env.bidRepo.bids[bid.Id]
	assert.Equal(t, common.Pending, stored.Status, "bid must be unchanged")
	assert.Empty(t, stored.AcceptedDate)
	assert.Empty(t, env.jobRepo.jobs, "no job may be derived")
}

func TestSetBidStatus_AcceptDerivesOneJob(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	accepted, err := s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")
	require.NoError(t, err)

	assert.Equal(t, common.Accepted, accepted.Status)
	assert.Equal(t, "2025-03-01", accepted.AcceptedDate)

	require.Len(t, env.jobRepo.jobs, 1)
	job, err := env.jobRepo.GetJobByName(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "1 Main", job.Address)
	assert.Equal(t, "a@x.com", job.Email)
	assert.Equal(t, 500.0, job.Price)
	assert.Equal(t, "2025-03-01", job.Date)
	assert.False(t, job.Completed)
	assert.False(t, job.Archived)
}

func TestSetBidStatus_ReacceptSameDateIsNoOp(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")
	require.NoError(t, err)
	_, err = s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")
	require.NoError(t, err)

	assert.Len(t, env.jobRepo.jobs, 1, "re-acceptance must not derive a second job")
}

func TestSetBidStatus_ReacceptDifferentDateFails(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")
	require.NoError(t, err)
	_, err = s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-04-01")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "2025-03-01", env.bidRepo.bids[bid.Id].AcceptedDate)
}

func TestSetBidStatus_ReacceptRecoversMissingDerivation(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")
	require.NoError(t, err)

	// simulate the crash window: bid accepted but derived job lost
	for id := range env.jobRepo.jobs {
		delete(env.jobRepo.jobs, id)
	}

	_, err = s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")
	require.NoError(t, err)
	assert.Len(t, env.jobRepo.jobs, 1, "retry must re-derive the job")
}

func TestSetBidStatus_RejectedIsTerminal(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, common.Rejected, "")
	require.NoError(t, err)
	_, err = s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, env.jobRepo.jobs)
}

func TestSetBidStatus_AcceptedDateOnlyWhenAccepted(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	rejected, err := s.SetBidStatus(context.Background(), bid.Id, common.Rejected, "2025-03-01")
	require.NoError(t, err)

	assert.Empty(t, rejected.AcceptedDate, "acceptedDate is set iff status is accepted")
}

func TestSetBidStatus_UnknownStatus(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, "approved", "")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetBidStatus_UnknownBid(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)

	_, err := s.SetBidStatus(context.Background(), "00000000-0000-0000-0000-000000000099", common.Rejected, "")

	assert.ErrorIs(t, err, ErrBidNotFound)
}

func TestDeleteBid_DoesNotCascadeToJob(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, common.Accepted, "2025-03-01")
	require.NoError(t, err)

	require.NoError(t, s.DeleteBid(context.Background(), bid.Id))

	assert.Empty(t, env.bidRepo.bids)
	assert.Len(t, env.jobRepo.jobs, 1, "derived job survives bid deletion")
}

func TestEditBid_RejectedBidRemainsEditable(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.SetBidStatus(context.Background(), bid.Id, common.Rejected, "")
	require.NoError(t, err)

	notes := "call back in spring"
	edited, err := s.EditBid(context.Background(), bid.Id, &entity.EditBidInput{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, notes, edited.Notes)
	assert.Equal(t, common.Rejected, edited.Status)
}

func TestEditBid_NoNewValues(t *testing.T) {
	env := newTestEnv()
	s := newBidServiceUnderTest(env)
	bid := submitTestBid(t, s)

	_, err := s.EditBid(context.Background(), bid.Id, &entity.EditBidInput{})

	assert.ErrorIs(t, err, ErrValidation)
}
