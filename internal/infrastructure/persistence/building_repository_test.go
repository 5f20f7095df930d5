package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/property"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBuildingRepository creates a GormBuildingRepository with a mocked SQL connection
func newMockBuildingRepository(t *testing.T) (*GormBuildingRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormBuildingRepository(gormDB), mock, mockDB
}

func TestGormBuildingRepository_FindByID(t *testing.T) {
	t.Run("finds existing building", func(t *testing.T) {
		repo, mock, mockDB := newMockBuildingRepository(t)
		defer mockDB.Close()

		buildingID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "address"}).
			AddRow(buildingID, "Riverside House", "12 Quay Street")

		mock.ExpectQuery(`SELECT \* FROM "buildings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(buildingID, 1).
			WillReturnRows(rows)

		building, err := repo.FindByID(context.Background(), buildingID)

		assert.NoError(t, err)
		assert.Equal(t, buildingID, building.ID)
		assert.Equal(t, "Riverside House", building.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record not found", func(t *testing.T) {
		repo, mock, mockDB := newMockBuildingRepository(t)
		defer mockDB.Close()

		buildingID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "buildings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(buildingID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), buildingID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockBuildingRepository(t)
		defer mockDB.Close()

		buildingID := uuid.New()
		dbErr := errors.New("connection refused")

		mock.ExpectQuery(`SELECT \* FROM "buildings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(buildingID, 1).
			WillReturnError(dbErr)

		_, err := repo.FindByID(context.Background(), buildingID)

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBuildingRepository_SaveAndSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBuildingRepository(db)
	ctx := context.Background()

	riverside, err := property.NewBuilding("Riverside House", "12 Quay Street")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, riverside))

	hilltop, err := property.NewBuilding("Hilltop Court", "3 Summit Road")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, hilltop))

	t.Run("finds by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Hilltop Court")
		require.NoError(t, err)
		assert.Equal(t, hilltop.ID, found.ID)
	})

	t.Run("search matches name and address", func(t *testing.T) {
		buildings, err := repo.FindAll(ctx, shared.Filter{Search: "Quay"})
		require.NoError(t, err)
		require.Len(t, buildings, 1)
		assert.Equal(t, riverside.ID, buildings[0].ID)
	})

	t.Run("orders by name by default", func(t *testing.T) {
		buildings, err := repo.FindAll(ctx, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, buildings, 2)
		assert.Equal(t, "Hilltop Court", buildings[0].Name)
	})
}
