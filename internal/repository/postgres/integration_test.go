//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifeline/internal/config"
	"lifeline/internal/domain"
	"lifeline/internal/repository"
	"lifeline/internal/repository/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configPath = flag.String("config", "config/config.test.yaml", "path to config file")

func prepareDB(t *testing.T) *sql.DB {
	t.Helper()

	// Resolve the config path whether run from the repo root or this package.
	finalPath := *configPath
	if _, err := os.Stat(finalPath); os.IsNotExist(err) {
		finalPath = filepath.Join("..", "..", "..", *configPath)
	}

	cfg, err := config.Load(finalPath)
	require.NoError(t, err, "failed to load config from %s", finalPath)

	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
		}
		time.Sleep(2 * time.Second)
	}
	require.NoError(t, err, "failed to connect to database")
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoreAgainstPostgres(t *testing.T) {
	db := prepareDB(t)
	ctx := context.Background()
	store := postgres.NewStore(db)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx), "schema must be re-appliable")

	suffix := time.Now().UnixNano() % 1_000_000
	phone := fmt.Sprintf("90000%05d", suffix%100_000)
	hospitalID := 1_000_000 + suffix

	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM blood_requests WHERE hospital_id = $1", hospitalID)
		_, _ = db.Exec("DELETE FROM hospitals WHERE hospital_id = $1", hospitalID)
		_, _ = db.Exec("DELETE FROM users WHERE phone_number = $1", phone)
		_, _ = db.Exec("DELETE FROM donors WHERE location = $1", "integration")
	})

	t.Run("UserUniqueness", func(t *testing.T) {
		u := &domain.User{FirstName: "Asha", BloodGroup: "O+", PhoneNumber: phone, PasswordHash: "hash"}
		require.NoError(t, store.UserRepository.Create(ctx, u))
		assert.NotZero(t, u.ID)

		err := store.UserRepository.Create(ctx, &domain.User{FirstName: "Other", BloodGroup: "A+", PhoneNumber: phone, PasswordHash: "hash"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("RequestLifecycle", func(t *testing.T) {
		require.NoError(t, store.HospitalRepository.Create(ctx, &domain.Hospital{
			HospitalID: hospitalID, HospitalName: "City General", DoctorName: "Rao", PasswordHash: "hash",
		}))

		req := &domain.BloodRequest{
			PatientName: "Anil", RequesterPhone: phone, HospitalName: "City General",
			HospitalID: hospitalID, BloodGroup: "O+", Location: "Pune",
		}
		require.NoError(t, store.BloodRequestRepository.Create(ctx, req))
		assert.Equal(t, domain.RequestStatusPending, req.Status)

		require.NoError(t, store.BloodRequestRepository.UpdateStatus(ctx, req.ID, domain.RequestStatusApproved))
		approved, err := store.BloodRequestRepository.ListByRequesterAndStatus(ctx, phone, domain.RequestStatusApproved)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, req.ID, approved[0].ID)

		pending, err := store.BloodRequestRepository.ListByHospital(ctx, hospitalID, domain.RequestStatusPending)
		require.NoError(t, err)
		assert.Empty(t, pending)

		err = store.BloodRequestRepository.Create(ctx, &domain.BloodRequest{
			PatientName: "Ghost", RequesterPhone: phone, HospitalName: "Nowhere",
			HospitalID: hospitalID + 1, BloodGroup: "O+", Location: "Pune",
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("DonorMatching", func(t *testing.T) {
		for _, d := range []domain.Donor{
			{DonorName: "Meera", BloodGroup: "O+", Location: "integration", PhoneNumber: "8000000001"},
			{DonorName: "Self", BloodGroup: "O+", Location: "integration", PhoneNumber: phone},
			{DonorName: "Ravi", BloodGroup: "B-", Location: "integration", PhoneNumber: "8000000002"},
		} {
			d := d
			require.NoError(t, store.DonorRepository.Create(ctx, &d))
		}

		donors, err := store.DonorRepository.ListByBloodGroups(ctx, []string{"O+"}, phone)
		require.NoError(t, err)
		for _, d := range donors {
			assert.Equal(t, "O+", d.BloodGroup)
			assert.NotEqual(t, phone, d.PhoneNumber)
		}
	})
}
