package service

import (
	"carousel/internal/config"
	"carousel/internal/repository"
	"carousel/internal/storage"
)

type Service struct {
	Pin     PinService
	Gallery GalleryService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Pin:     NewPinService(repo.Pin, storage, cfg),
		Gallery: NewGalleryService(repo.Pin, cfg),
	}
}
