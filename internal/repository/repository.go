package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"carousel/internal/models"
)

type PinRepository interface {
	Create(ctx context.Context, pin *models.Pin) error
	GetAll(ctx context.Context) ([]models.Pin, error)
	GetByID(ctx context.Context, pinID string) (*models.Pin, error)
	Delete(ctx context.Context, pinID string) error
}

type Repository struct {
	Pin PinRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Pin: NewPinRepository(db),
	}
}
