package service

import (
	"fmt"

	"lifeline/internal/domain"
)

func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", domain.ErrStorageFailure, op, err)
}
