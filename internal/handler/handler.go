package handlers

import (
	"github.com/go-playground/validator/v10"

	"carousel/internal/config"
	"carousel/internal/repository"
	"carousel/internal/service"
)

type Handlers struct {
	PinService     service.PinService
	GalleryService service.GalleryService
	PinRepo        repository.PinRepository
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PinService:     service.Pin,
		GalleryService: service.Gallery,
		PinRepo:        repo.Pin,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
