package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"carousel/internal/models"
	"carousel/internal/service"
)

type MockPinRepository struct {
	mock.Mock
}

func (m *MockPinRepository) Create(ctx context.Context, pin *models.Pin) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

func (m *MockPinRepository) GetAll(ctx context.Context) ([]models.Pin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pin), args.Error(1)
}

func (m *MockPinRepository) GetByID(ctx context.Context, id string) (*models.Pin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pin), args.Error(1)
}

func (m *MockPinRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPinService struct {
	mock.Mock
}

func (m *MockPinService) CreatePin(ctx context.Context, req service.CreatePinRequest) (*models.Pin, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pin), args.Error(1)
}

func (m *MockPinService) UploadImage(ctx context.Context, req service.UploadImageRequest) (*models.Pin, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pin), args.Error(1)
}

func (m *MockPinService) PublicURL(imageURL string) string {
	args := m.Called(imageURL)
	return args.String(0)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) ListImages(ctx context.Context, page, limit int) (*service.GalleryPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GalleryPage), args.Error(1)
}
