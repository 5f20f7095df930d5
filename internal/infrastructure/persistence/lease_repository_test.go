package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = AutoMigrate(db)
	require.NoError(t, err)

	return db
}

func newSavedLease(t *testing.T, ctx context.Context, repo *GormLeaseRepository) *leasing.Lease {
	t.Helper()
	start := time.Now().AddDate(0, -2, 0)
	end := time.Now().AddDate(0, 10, 0)
	lease, err := leasing.NewLease(uuid.New(), uuid.New(), valueobject.NewMoneyFromFloat(500), start, end)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, lease))
	return lease
}

func TestLeaseRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLeaseRepository(db)
	ctx := context.Background()

	t.Run("round-trips a lease", func(t *testing.T) {
		lease := newSavedLease(t, ctx, repo)

		found, err := repo.FindByID(ctx, lease.ID)
		require.NoError(t, err)
		assert.Equal(t, lease.ID, found.ID)
		assert.Equal(t, lease.UnitID, found.UnitID)
		assert.Equal(t, leasing.LeaseStatusActive, found.Status)
		assert.True(t, lease.MonthlyRent.Equal(found.MonthlyRent))
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestLeaseRepository_FindOpenByUnit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLeaseRepository(db)
	ctx := context.Background()

	t.Run("finds the lease holding the unit", func(t *testing.T) {
		lease := newSavedLease(t, ctx, repo)

		found, err := repo.FindOpenByUnit(ctx, lease.UnitID)
		require.NoError(t, err)
		assert.Equal(t, lease.ID, found.ID)
	})

	t.Run("ignores terminal leases", func(t *testing.T) {
		lease := newSavedLease(t, ctx, repo)
		require.NoError(t, lease.Cancel("tenant moved out"))
		require.NoError(t, repo.Save(ctx, lease))

		_, err := repo.FindOpenByUnit(ctx, lease.UnitID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestLeaseRepository_FindIDsByStatuses(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLeaseRepository(db)
	ctx := context.Background()

	active := newSavedLease(t, ctx, repo)
	cancelled := newSavedLease(t, ctx, repo)
	require.NoError(t, cancelled.Cancel("vacated"))
	require.NoError(t, repo.Save(ctx, cancelled))

	ids, err := repo.FindIDsByStatuses(ctx, []leasing.LeaseStatus{leasing.LeaseStatusActive, leasing.LeaseStatusExpiringSoon})
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, active.ID, ids[0])
}

func TestLeaseRepository_FindByStatusesFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLeaseRepository(db)
	ctx := context.Background()

	lease := newSavedLease(t, ctx, repo)
	newSavedLease(t, ctx, repo)

	leases, err := repo.FindByTenant(ctx, lease.TenantID, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, lease.ID, leases[0].ID)

	count, err := repo.Count(ctx, shared.Filter{Filters: map[string]any{"status": leasing.LeaseStatusActive}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLeaseRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLeaseRepository(db)
	ctx := context.Background()

	lease := newSavedLease(t, ctx, repo)

	require.NoError(t, repo.Delete(ctx, lease.ID))
	_, err := repo.FindByID(ctx, lease.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, lease.ID), shared.ErrNotFound)
}
