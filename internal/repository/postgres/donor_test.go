package postgres_test

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain"
	"lifeline/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonorRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewDonorRepository(db)
	d := &domain.Donor{DonorName: "Meera", BloodGroup: "O+", Location: "Pune", PhoneNumber: "9999999999"}

	mock.ExpectQuery("INSERT INTO donors").
		WithArgs("Meera", "O+", "Pune", "9999999999", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	require.NoError(t, repo.Create(context.Background(), d))
	assert.Equal(t, int64(3), d.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonorRepository_ListByBloodGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewDonorRepository(db)
	ctx := context.Background()
	columns := []string{"id", "donor_name", "blood_group", "location", "phone_number", "created_on"}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(1, "Meera", "O+", "Pune", "9999999999", time.Now()).
			AddRow(2, "Meera", "O+", "Pune", "9999999999", time.Now()).
			AddRow(5, "Kiran", "AB-", "Delhi", "8888888888", time.Now())
		mock.ExpectQuery("SELECT (.+) FROM donors WHERE blood_group = ANY\\(\\$1\\) AND phone_number <> \\$2").
			WithArgs(sqlmock.AnyArg(), "1234567890").
			WillReturnRows(rows)

		donors, err := repo.ListByBloodGroups(ctx, []string{"O+", "AB-"}, "1234567890")
		require.NoError(t, err)
		require.Len(t, donors, 3)
		assert.Equal(t, int64(1), donors[0].ID)
		assert.Equal(t, int64(2), donors[1].ID)
		assert.Equal(t, "Kiran", donors[2].DonorName)
	})

	t.Run("NoGroups", func(t *testing.T) {
		donors, err := repo.ListByBloodGroups(ctx, nil, "1234567890")
		assert.NoError(t, err)
		assert.Empty(t, donors)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM donors").
			WithArgs(sqlmock.AnyArg(), "1234567890").
			WillReturnError(assert.AnError)

		donors, err := repo.ListByBloodGroups(ctx, []string{"B+"}, "1234567890")
		assert.Error(t, err)
		assert.Nil(t, donors)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
