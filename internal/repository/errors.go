package repository

import (
	"errors"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"

	"gorm.io/gorm"
)

// translate converts gorm errors into the application error taxonomy at
// the storage boundary. Raw driver errors never cross into services.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return apperrors.Storage(err)
}
