package service

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"

	"carousel/internal/config"
	"carousel/internal/models"
	"carousel/internal/repository"
	"carousel/internal/storage"
)

// ValidationError - ошибка проверки входных данных, транслируется в HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type PinService interface {
	CreatePin(ctx context.Context, req CreatePinRequest) (*models.Pin, error)
	UploadImage(ctx context.Context, req UploadImageRequest) (*models.Pin, error)
	PublicURL(imageURL string) string
}

type CreatePinRequest struct {
	File     io.Reader
	Filename string
	Title    string
	Tags     string
}

type UploadImageRequest struct {
	File        io.Reader
	Filename    string
	Title       string
	Description string
	Tags        string
}

type pinService struct {
	pinRepo repository.PinRepository
	store   storage.Storage
	cfg     *config.Config
}

func NewPinService(pinRepo repository.PinRepository, store storage.Storage, cfg *config.Config) PinService {
	return &pinService{
		pinRepo: pinRepo,
		store:   store,
		cfg:     cfg,
	}
}

// CreatePin - строгий вариант конвейера: пустой заголовок отклоняется.
func (p *pinService) CreatePin(ctx context.Context, req CreatePinRequest) (*models.Pin, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Message: "Отсутствует заголовок"}
	}

	return p.ingest(ctx, req.File, req.Filename, title, "", req.Tags)
}

// UploadImage - вариант для галереи: вместо отсутствующего заголовка
// подставляется имя исходного файла.
func (p *pinService) UploadImage(ctx context.Context, req UploadImageRequest) (*models.Pin, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = req.Filename
	}
	if title == "" {
		title = "Untitled"
	}

	return p.ingest(ctx, req.File, req.Filename, title, strings.TrimSpace(req.Description), req.Tags)
}

// ingest - общий конвейер загрузки: проверка, запись на диск, оптимизация
// по возможности, запись метаданных. Отката нет: если вставка метаданных
// не удалась после записи файла, файл остаётся на диске осиротевшим.
func (p *pinService) ingest(ctx context.Context, file io.Reader, fileName, title, description, tagsInput string) (*models.Pin, error) {
	if file == nil || fileName == "" {
		return nil, &ValidationError{Message: "Изображение не выбрано"}
	}

	if !p.store.IsAllowed(fileName) {
		return nil, &ValidationError{Message: "Недопустимый формат файла"}
	}

	storedName, err := p.store.Save(fileName, file)
	if err != nil {
		return nil, err
	}

	// ошибка оптимизации сознательно отбрасывается: на диске остаётся
	// то, что записала загрузка
	optPath := p.store.Path(storedName)
	if err := storage.Optimize(optPath, storage.DefaultMaxWidth, storage.DefaultMaxHeight, storage.DefaultQuality); err != nil {
		log.Printf("Предупреждение: не удалось оптимизировать изображение %s: %v", storedName, err)
	}

	pin := &models.Pin{
		Title:       title,
		ImageURL:    "/uploads/" + storedName,
		Tags:        ParseTags(tagsInput),
		Description: description,
	}

	if err := p.pinRepo.Create(ctx, pin); err != nil {
		return nil, err
	}

	return pin, nil
}

func (p *pinService) PublicURL(imageURL string) string {
	return publicURL(p.cfg.BaseURL, imageURL)
}

// publicURL превращает относительную ссылку /uploads/... во внешний адрес.
func publicURL(baseURL, imageURL string) string {
	if strings.HasPrefix(imageURL, "/uploads/") {
		return baseURL + imageURL
	}
	return imageURL
}

// ParseTags принимает либо JSON-массив, либо строку через запятую.
// Каждый тег обрезается, пустые отбрасываются, порядок сохраняется,
// дубликаты не удаляются.
func ParseTags(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return []string{}
	}

	var parts []string
	if strings.HasPrefix(input, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(input), &parsed); err == nil {
			parts = parsed
		} else {
			parts = strings.Split(input, ",")
		}
	} else {
		parts = strings.Split(input, ",")
	}

	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
