package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/jobid"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

func TestCreateAssignsJobIDs(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	svc := newJobService(t, db, nil)

	job, err := svc.Create(ctx, jobRequest("Senior Data Scientist"))
	require.NoError(err)
	require.Equal("DZ-DS-0001", job.JobID)
	require.NotEmpty(job.ID)

	job, err = svc.Create(ctx, jobRequest("Data Scientist II"))
	require.NoError(err)
	require.Equal("DZ-DS-0002", job.JobID)

	job, err = svc.Create(ctx, jobRequest("Marketing Coordinator"))
	require.NoError(err)
	require.Equal("DZ-GN-0001", job.JobID)

	job, err = svc.Create(ctx, jobRequest("DevOps Engineer"))
	require.NoError(err)
	require.Equal("DZ-DO-0001", job.JobID)
}

func TestCreateNeverReusesDeletedJobID(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	svc := newJobService(t, db, nil)

	first, err := svc.Create(ctx, jobRequest("Data Engineer"))
	require.NoError(err)
	require.NoError(svc.Delete(ctx, first.ID))

	_, err = svc.Get(ctx, first.ID)
	require.ErrorIs(err, ErrNotFound)

	second, err := svc.Create(ctx, jobRequest("Data Engineer"))
	require.NoError(err)
	require.Equal("DZ-DE-0002", second.JobID)
}

func TestCreateRetriesOnConflict(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	store := NewIdentifierStore(db, "DZ", false)

	// another writer already stored DZ-DS-0001 but the first read misses it
	seed := newJobService(t, db, nil)
	_, err := seed.Create(ctx, jobRequest("Data Scientist"))
	require.NoError(err)

	reads := 0
	stale := jobid.ProviderFunc(func(ctx context.Context, code jobid.Code) ([]string, error) {
		reads++
		if reads == 1 {
			return nil, nil
		}
		return store.Identifiers(ctx, code)
	})

	svc := newJobService(t, db, stale)
	job, err := svc.Create(ctx, jobRequest("Lead Data Scientist"))
	require.NoError(err)
	require.Equal("DZ-DS-0002", job.JobID)
	require.Equal(2, reads)

	var count int64
	require.NoError(db.Model(&models.JobRequirement{}).Count(&count).Error)
	require.EqualValues(2, count)
}

func TestCreateGivesUpAfterMaxAttempts(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	seed := newJobService(t, db, nil)
	_, err := seed.Create(ctx, jobRequest("Data Scientist"))
	require.NoError(err)

	reads := 0
	alwaysStale := jobid.ProviderFunc(func(context.Context, jobid.Code) ([]string, error) {
		reads++
		return nil, nil
	})

	svc := newJobService(t, db, alwaysStale)
	_, err = svc.Create(ctx, jobRequest("Data Scientist"))
	require.ErrorIs(err, ErrIdentifierConflict)
	require.Equal(svc.MaxAttempts, reads)
}

func TestCreatePropagatesProviderError(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	boom := errors.New("backend unavailable")
	svc := newJobService(t, db, jobid.ProviderFunc(func(context.Context, jobid.Code) ([]string, error) {
		return nil, boom
	}))

	_, err := svc.Create(ctx, jobRequest("Data Scientist"))
	require.ErrorIs(err, boom)
	require.NotErrorIs(err, ErrIdentifierConflict)

	var count int64
	require.NoError(db.Model(&models.JobRequirement{}).Count(&count).Error)
	require.Zero(count)
}

func TestUpdateKeepsJobID(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	svc := newJobService(t, db, nil)

	job, err := svc.Create(ctx, jobRequest("Data Scientist"))
	require.NoError(err)

	req := jobRequest("DevOps Engineer")
	req.Status = "OnHold"
	req.Salary = &dtos.SalaryRange{Min: 100, Max: 150}
	req.Deadline = "2026-12-31"

	updated, err := svc.Update(ctx, job.ID, req)
	require.NoError(err)
	require.Equal("DZ-DS-0001", updated.JobID)

	got, err := svc.GetByJobID(ctx, "DZ-DS-0001")
	require.NoError(err)
	assert.Equal(t, "DevOps Engineer", got.Title)
	assert.Equal(t, "OnHold", got.Status)
	assert.Equal(t, "USD", got.SalaryCurrency)
	require.NotNil(got.SalaryMax)
	assert.InDelta(t, 150, *got.SalaryMax, 0.001)
	require.NotNil(got.Deadline)
	assert.Equal(t, "2026-12-31", got.Deadline.Format(dtos.DateLayout))
	assert.Equal(t, []string{"Go", "Postgres"}, got.TechStack)
}

func TestUpdateRejectsBadDate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newJobService(t, db, nil)

	job, err := svc.Create(ctx, jobRequest("Data Scientist"))
	require.NoError(t, err)

	req := jobRequest("Data Scientist")
	req.Deadline = "31/12/2026"
	_, err = svc.Update(ctx, job.ID, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobRequirementLookups(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newJobService(t, db, nil)

	_, err := svc.GetByJobID(ctx, "DZ-XX-0001")
	assert.ErrorIs(t, err, ErrJobRequirementNotFound)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestListJobRequirements(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	svc := newJobService(t, db, nil)

	for _, title := range []string{"Data Scientist", "Data Engineer", "Office Manager"} {
		_, err := svc.Create(ctx, jobRequest(title))
		require.NoError(err)
	}
	closed := jobRequest("DevOps Engineer")
	closed.Status = "Closed"
	closed.Client = "Globex"
	_, err := svc.Create(ctx, closed)
	require.NoError(err)

	all, err := svc.List(ctx, dtos.ListFilter{})
	require.NoError(err)
	require.Len(all, 4)

	byTitle, err := svc.List(ctx, dtos.ListFilter{Query: "DATA"})
	require.NoError(err)
	require.Len(byTitle, 2)

	byJobID, err := svc.List(ctx, dtos.ListFilter{Query: "dz-gn"})
	require.NoError(err)
	require.Len(byJobID, 1)
	require.Equal("Office Manager", byJobID[0].Title)

	byStatus, err := svc.List(ctx, dtos.ListFilter{Status: "Closed"})
	require.NoError(err)
	require.Len(byStatus, 1)
	require.Equal("Globex", byStatus[0].Client)

	none, err := svc.List(ctx, dtos.ListFilter{Query: "globex", Status: "Active"})
	require.NoError(err)
	require.Empty(none)
}

func TestPreviewIDDoesNotReserve(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	svc := newJobService(t, db, nil)

	id, err := svc.PreviewID(ctx, "AI Engineer")
	require.NoError(err)
	require.Equal("DZ-AI-0001", id.String())

	id, err = svc.PreviewID(ctx, "AI Engineer")
	require.NoError(err)
	require.Equal("DZ-AI-0001", id.String())
}
