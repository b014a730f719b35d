package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"carousel/internal/models"
	"carousel/internal/repository"
	"carousel/internal/service"
)

type PinsResponse struct {
	Success bool         `json:"success"`
	Pins    []models.Pin `json:"pins"`
}

type PinResponse struct {
	Success bool        `json:"success"`
	Pin     *models.Pin `json:"pin"`
}

type PinCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PinID   string `json:"pin_id"`
}

// PinsHandler обслуживает /api/pins: GET - список, POST - создание.
func (h *Handlers) PinsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetPins(w, r)
	case http.MethodPost:
		h.CreatePin(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) GetPins(w http.ResponseWriter, r *http.Request) {
	pins, err := h.PinRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, PinsResponse{Success: true, Pins: pins}, http.StatusOK)
}

// CreatePin - строгая точка входа: без заголовка пин не создаётся.
func (h *Handlers) CreatePin(w http.ResponseWriter, r *http.Request) {
	// ограничение размера формы берётся из конфига
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

	var req struct {
		Title string `validate:"required"`
	}
	req.Title = strings.TrimSpace(r.FormValue("title"))

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует заголовок", http.StatusBadRequest)
		return
	}

	pin, err := h.PinService.CreatePin(r.Context(), service.CreatePinRequest{
		File:     file,
		Filename: header.Filename,
		Title:    req.Title,
		Tags:     r.FormValue("tags"),
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

	writeJSON(w, PinCreatedResponse{
		Success: true,
		Message: "Пин успешно создан",
		PinID:   pin.PinID,
	}, http.StatusCreated)
}

// PinHandler обслуживает /api/pins/{id}: GET - получение, DELETE - удаление.
func (h *Handlers) PinHandler(w http.ResponseWriter, r *http.Request) {
	pinID := mux.Vars(r)["id"]

	switch r.Method {
	case http.MethodGet:
		pin, err := h.PinRepo.GetByID(r.Context(), pinID)
		if err != nil {
			if errors.Is(err, repository.ErrPinNotFound) {
				WriteError(w, "Пин не найден", http.StatusNotFound)
			} else {
				WriteError(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, PinResponse{Success: true, Pin: pin}, http.StatusOK)
	case http.MethodDelete:
		// файл на диске сознательно не удаляется: жизненный цикл
		// распространяется только на запись в хранилище
		if err := h.PinRepo.Delete(r.Context(), pinID); err != nil {
			if errors.Is(err, repository.ErrPinNotFound) {
				WriteError(w, "Пин не найден", http.StatusNotFound)
			} else {
				WriteError(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, MessageResponse{Success: true, Message: "Пин успешно удален"}, http.StatusOK)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ServeUpload отдаёт исходные байты файла из каталога загрузок.
func (h *Handlers) ServeUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Base отсекает попытки выйти из каталога загрузок
	fileName := filepath.Base(mux.Vars(r)["filename"])
	filePath := filepath.Join(h.Cfg.UploadDir, fileName)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		WriteError(w, "Файл не найден", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, filePath)
}
