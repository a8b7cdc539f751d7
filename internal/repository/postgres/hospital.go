package postgres

import (
	"context"
	"database/sql"
	"time"

	"lifeline/internal/domain"
	"lifeline/internal/repository"
)

type hospitalRepository struct {
	db *sql.DB
}

func NewHospitalRepository(db *sql.DB) repository.HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) Create(ctx context.Context, h *domain.Hospital) error {
	query := `INSERT INTO hospitals (hospital_id, hospital_name, doctor_name, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5)`
	h.CreatedOn = time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, h.HospitalID, h.HospitalName, h.DoctorName, h.PasswordHash, h.CreatedOn)
	return mapError(err)
}

func (r *hospitalRepository) GetByHospitalID(ctx context.Context, hospitalID int64) (*domain.Hospital, error) {
	h := &domain.Hospital{}
	query := `SELECT hospital_id, hospital_name, doctor_name, password_hash, created_on FROM hospitals WHERE hospital_id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, hospitalID).Scan(&h.HospitalID, &h.HospitalName, &h.DoctorName, &h.PasswordHash, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	h.CreatedOn = createdOn.Format("2006-01-02")
	return h, nil
}
