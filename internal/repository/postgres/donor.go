package postgres

import (
	"context"
	"database/sql"
	"time"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/repository"

	"github.com/lib/pq"
)

type donorRepository struct {
	db *sql.DB
}

func NewDonorRepository(db *sql.DB) repository.DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, d *domain.Donor) error {
	query := `INSERT INTO donors (donor_name, blood_group, location, phone_number, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	d.CreatedOn = time.Now().Format("2006-01-02")
	err := r.db.QueryRowContext(ctx, query, d.DonorName, d.BloodGroup, d.Location, d.PhoneNumber, d.CreatedOn).Scan(&d.ID)
	return mapError(err)
}

// ListByBloodGroups returns donors in insertion order whose group is in groups,
// skipping donors registered with excludePhone.
func (r *donorRepository) ListByBloodGroups(ctx context.Context, groups []string, excludePhone string) ([]domain.Donor, error) {
	logger.EnterMethod("donorRepository.ListByBloodGroups", "groups", groups)
	if len(groups) == 0 {
		logger.ExitMethod("donorRepository.ListByBloodGroups", "count", 0)
		return nil, nil
	}

	query := `SELECT id, donor_name, blood_group, location, phone_number, created_on
	          FROM donors
	          WHERE blood_group = ANY($1) AND phone_number <> $2
	          ORDER BY id`
	logger.DatabaseCall("SELECT", "donors", "groups", groups)

	rows, err := r.db.QueryContext(ctx, query, pq.Array(groups), excludePhone)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("donorRepository.ListByBloodGroups", err)
		return nil, mapError(err)
	}
	defer rows.Close()

	var donors []domain.Donor
	for rows.Next() {
		var d domain.Donor
		var createdOn time.Time
		if err := rows.Scan(&d.ID, &d.DonorName, &d.BloodGroup, &d.Location, &d.PhoneNumber, &createdOn); err != nil {
			logger.ExitMethodWithError("donorRepository.ListByBloodGroups", err)
			return nil, err
		}
		d.CreatedOn = createdOn.Format("2006-01-02")
		donors = append(donors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.DatabaseResult("SELECT", int64(len(donors)), nil)
	logger.ExitMethod("donorRepository.ListByBloodGroups", "count", len(donors))
	return donors, nil
}
