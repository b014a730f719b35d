package service

import (
	"context"

	"carousel/internal/config"
	"carousel/internal/models"
	"carousel/internal/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

type GalleryImage struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Thumbnail   string   `json:"thumbnail"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	UploadDate  string   `json:"uploadDate"`
	Size        int64    `json:"size"`
	Filename    string   `json:"filename"`
	Likes       int      `json:"likes"`
	Views       int      `json:"views"`
}

type GalleryPage struct {
	Images     []GalleryImage `json:"images"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	HasMore    bool           `json:"hasMore"`
}

type GalleryService interface {
	ListImages(ctx context.Context, page, limit int) (*GalleryPage, error)
}

type galleryService struct {
	pinRepo repository.PinRepository
	cfg     *config.Config
}

func NewGalleryService(pinRepo repository.PinRepository, cfg *config.Config) GalleryService {
	return &galleryService{
		pinRepo: pinRepo,
		cfg:     cfg,
	}
}

// ListImages читает все записи и переводит их в витринную форму
// с постраничной нарезкой.
func (g *galleryService) ListImages(ctx context.Context, page, limit int) (*GalleryPage, error) {
	pins, err := g.pinRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	images := make([]GalleryImage, 0, len(pins))
	for _, pin := range pins {
		images = append(images, toGalleryImage(pin, g.cfg.BaseURL))
	}

	return Paginate(images, page, limit), nil
}

// Нулевые size/filename/likes/views - заглушки для полей, которых нет
// в хранилище, а не вычисленные значения.
func toGalleryImage(pin models.Pin, baseURL string) GalleryImage {
	url := publicURL(baseURL, pin.ImageURL)

	return GalleryImage{
		ID:          pin.PinID,
		URL:         url,
		Thumbnail:   url, // отдельная миниатюра не генерируется
		Title:       pin.Title,
		Description: pin.Description,
		Tags:        pin.Tags,
		UploadDate:  pin.CreatedAt,
		Size:        0,
		Filename:    "",
		Likes:       0,
		Views:       0,
	}
}

// Paginate нарезает полный набор по смещению. Выход за границы даёт
// пустую страницу, а не ошибку; верхний предел limit не проверяется.
func Paginate(images []GalleryImage, page, limit int) *GalleryPage {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(images)
	start := (page - 1) * limit
	end := start + limit

	items := []GalleryImage{}
	if start < total {
		if end > total {
			items = images[start:total]
		} else {
			items = images[start:end]
		}
	}

	return &GalleryPage{
		Images:     items,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		HasMore:    end < total,
	}
}
