package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"carousel/internal/service"
)

// UploadResponse - плоская форма ответа /api/upload, сохранена отдельно
// от формы /api/pins ради существующего клиента галереи.
type UploadResponse struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	UploadDate  string   `json:"uploadDate"`
	Size        int64    `json:"size"`
	Filename    string   `json:"filename"`
}

// GetImages - витрина галереи: GET /api/images?page=&limit=
func (h *Handlers) GetImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = service.DefaultPage
	}

	// верхняя граница limit не проверяется, вызывающему доверяем
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = service.DefaultLimit
	}

	galleryPage, err := h.GalleryService.ListImages(r.Context(), page, limit)
	if err != nil {
		// форма ответа галереи сохраняется и при ошибке
		writeJSON(w, struct {
			service.GalleryPage
			Error string `json:"error"`
		}{
			GalleryPage: service.GalleryPage{Images: []service.GalleryImage{}, Page: 1},
			Error:       err.Error(),
		}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, galleryPage, http.StatusOK)
}

// UploadImage - точка входа галереи: отсутствующий заголовок заменяется
// именем файла, description сохраняется вместе с записью.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Изображение не выбрано", http.StatusBadRequest)
		return
	}
	defer file.Close()

	pin, err := h.PinService.UploadImage(r.Context(), service.UploadImageRequest{
		File:        file,
		Filename:    header.Filename,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Tags:        r.FormValue("tags"),
	})
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			WriteError(w, validationErr.Message, http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, UploadResponse{
		ID:          pin.PinID,
		URL:         h.PinService.PublicURL(pin.ImageURL),
		Title:       pin.Title,
		Description: pin.Description,
		Tags:        pin.Tags,
		UploadDate:  pin.CreatedAt,
		Size:        0, // размер файла хранилищем не отслеживается
		Filename:    header.Filename,
	}, http.StatusCreated)
}
