package postgres

import (
	"context"
	"database/sql"
	"time"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/repository"

	"github.com/google/uuid"
)

const requestColumns = `id, patient_name, requester_phone, hospital_name, hospital_id, blood_group, location, status, created_at, updated_at`

type bloodRequestRepository struct {
	db *sql.DB
}

func NewBloodRequestRepository(db *sql.DB) repository.BloodRequestRepository {
	return &bloodRequestRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.BloodRequest, error) {
	req := &domain.BloodRequest{}
	var status string
	err := row.Scan(&req.ID, &req.PatientName, &req.RequesterPhone, &req.HospitalName, &req.HospitalID,
		&req.BloodGroup, &req.Location, &status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	return req, nil
}

func (r *bloodRequestRepository) Create(ctx context.Context, req *domain.BloodRequest) error {
	logger.EnterMethod("bloodRequestRepository.Create", "hospitalID", req.HospitalID)
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = domain.RequestStatusPending
	}
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `INSERT INTO blood_requests (` + requestColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	logger.DatabaseCall("INSERT", "blood_requests", "id", req.ID)
	res, err := r.db.ExecContext(ctx, query, req.ID, req.PatientName, req.RequesterPhone, req.HospitalName,
		req.HospitalID, req.BloodGroup, req.Location, string(req.Status), req.CreatedAt, req.UpdatedAt)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err)
		logger.ExitMethodWithError("bloodRequestRepository.Create", err)
		return mapError(err)
	}
	rows, _ := res.RowsAffected()
	logger.DatabaseResult("INSERT", rows, nil)
	logger.ExitMethod("bloodRequestRepository.Create", "id", req.ID)
	return nil
}

func (r *bloodRequestRepository) GetByID(ctx context.Context, id string) (*domain.BloodRequest, error) {
	// Malformed IDs can never match a row.
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	query := `SELECT ` + requestColumns + ` FROM blood_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return req, nil
}

func (r *bloodRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	logger.EnterMethod("bloodRequestRepository.UpdateStatus", "id", id, "status", status)
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	query := `UPDATE blood_requests SET status = $1, updated_at = $2 WHERE id = $3`
	logger.DatabaseCall("UPDATE", "blood_requests", "id", id)
	res, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		logger.ExitMethodWithError("bloodRequestRepository.UpdateStatus", err)
		return mapError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	logger.DatabaseResult("UPDATE", rows, nil)
	if rows == 0 {
		return repository.ErrNotFound
	}
	logger.ExitMethod("bloodRequestRepository.UpdateStatus")
	return nil
}

func (r *bloodRequestRepository) ListByHospital(ctx context.Context, hospitalID int64, status domain.RequestStatus) ([]domain.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests
	          WHERE hospital_id = $1 AND status = $2
	          ORDER BY created_at, id`
	return r.list(ctx, query, hospitalID, string(status))
}

func (r *bloodRequestRepository) ListByRequester(ctx context.Context, phone string) ([]domain.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests
	          WHERE requester_phone = $1
	          ORDER BY created_at, id`
	return r.list(ctx, query, phone)
}

func (r *bloodRequestRepository) ListByRequesterAndStatus(ctx context.Context, phone string, status domain.RequestStatus) ([]domain.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests
	          WHERE requester_phone = $1 AND status = $2
	          ORDER BY created_at, id`
	return r.list(ctx, query, phone, string(status))
}

func (r *bloodRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.BloodRequest, error) {
	logger.DatabaseCall("SELECT", "blood_requests", "args", len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.BloodRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(out)), nil)
	return out, nil
}
