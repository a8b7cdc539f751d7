package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"lifeline/internal/logger"
	"lifeline/internal/repository"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.HospitalRepository
	repository.DonorRepository
	repository.BloodRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		HospitalRepository:     NewHospitalRepository(db),
		DonorRepository:        NewDonorRepository(db),
		BloodRequestRepository: NewBloodRequestRepository(db),
	}
}

// Migrate creates the tables and indexes if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	logger.DatabaseCall("DDL", "schema.sql")
	_, err := s.db.ExecContext(ctx, schema)
	logger.DatabaseResult("DDL", 0, err)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
