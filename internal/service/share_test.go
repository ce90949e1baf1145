package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShareServiceUnderTest(env *testEnv) *ShareService {
	return NewShareService(env.repos, env.ids, env.clock.Now)
}

func TestCreateShare_UnknownJob(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)

	_, err := s.CreateShare(context.Background(), "00000000-0000-0000-0000-000000000099", time.Hour)

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestResolveShare_WithinTtl(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)
	job := seedJob(env, "A", false, false)

	share, err := s.CreateShare(context.Background(), job.Id.String(), time.Hour)
	require.NoError(t, err)

	resolved, err := s.ResolveShare(context.Background(), share.Id)
	require.NoError(t, err)
	require.Len(t, resolved.Jobs, 1)
	assert.Equal(t, "A", resolved.Jobs[0].Name)
}

func TestResolveShare_ExpiredBehavesAsNotFound(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)
	job := seedJob(env, "A", false, false)

	share, err := s.CreateShare(context.Background(), job.Id.String(), time.Hour)
	require.NoError(t, err)

	env.clock.Advance(2 * time.Hour)

	_, err = s.ResolveShare(context.Background(), share.Id)
	assert.ErrorIs(t, err, ErrShareNotFound)
	assert.Empty(t, env.shareRepo.shares, "expired link is cleaned up on access")
}

func TestResolveShare_SnapshotIgnoresLaterEdits(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)
	job := seedJob(env, "A", false, false)

	share, err := s.CreateShare(context.Background(), job.Id.String(), time.Hour)
	require.NoError(t, err)

	// edit the job after the link was issued
	stored := env.jobRepo.jobs[job.Id.String()]
	stored.Address = "moved away"
	env.jobRepo.jobs[job.Id.String()] = stored

	resolved, err := s.ResolveShare(context.Background(), share.Id)
	require.NoError(t, err)
	assert.Equal(t, "A street", resolved.Jobs[0].Address, "shared view is a point-in-time copy")
}

func TestCreateDayShare_BucketsActiveJobsOfDay(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)

	onDay := seedJob(env, "A", false, false)
	onDay.Date = "2025-03-01"
	env.jobRepo.jobs[onDay.Id.String()] = onDay

	otherDay := seedJob(env, "B", false, false)
	otherDay.Date = "2025-03-02"
	env.jobRepo.jobs[otherDay.Id.String()] = otherDay

	archived := seedJob(env, "C", true, true)
	archived.Date = "2025-03-01"
	env.jobRepo.jobs[archived.Id.String()] = archived

	share, err := s.CreateDayShare(context.Background(), "2025-03-01", time.Hour)
	require.NoError(t, err)

	require.Len(t, share.Jobs, 1)
	assert.Equal(t, "A", share.Jobs[0].Name)
	assert.Equal(t, "2025-03-01", share.Day)
}

func TestSetShareComment(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)
	job := seedJob(env, "A", false, false)

	share, err := s.CreateShare(context.Background(), job.Id.String(), time.Hour)
	require.NoError(t, err)

	require.NoError(t, s.SetShareComment(context.Background(), share.Id, "gate code is 4411"))

	resolved, err := s.ResolveShare(context.Background(), share.Id)
	require.NoError(t, err)
	assert.Equal(t, "gate code is 4411", resolved.Comment)
}

func TestSetShareComment_Expired(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)
	job := seedJob(env, "A", false, false)

	share, err := s.CreateShare(context.Background(), job.Id.String(), time.Hour)
	require.NoError(t, err)

	env.clock.Advance(2 * time.Hour)

	err = s.SetShareComment(context.Background(), share.Id, "too late")
	assert.ErrorIs(t, err, ErrShareNotFound)
}

func TestCreateShare_RejectsNonPositiveTtl(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)
	job := seedJob(env, "A", false, false)

	_, err := s.CreateShare(context.Background(), job.Id.String(), 0)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveShare_UnknownId(t *testing.T) {
	env := newTestEnv()
	s := newShareServiceUnderTest(env)

	_, err := s.ResolveShare(context.Background(), "00000000-0000-0000-0000-000000000099")

	assert.ErrorIs(t, err, ErrShareNotFound)
}
