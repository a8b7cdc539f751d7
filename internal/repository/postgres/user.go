package postgres

import (
	"context"
	"database/sql"
	"time"

	"lifeline/internal/domain"
	"lifeline/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (first_name, blood_group, phone_number, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	u.CreatedOn = time.Now().Format("2006-01-02")
	err := r.db.QueryRowContext(ctx, query, u.FirstName, u.BloodGroup, u.PhoneNumber, u.PasswordHash, u.CreatedOn).Scan(&u.ID)
	return mapError(err)
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, first_name, blood_group, phone_number, password_hash, created_on FROM users WHERE phone_number = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, phone).Scan(&u.ID, &u.FirstName, &u.BloodGroup, &u.PhoneNumber, &u.PasswordHash, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}
