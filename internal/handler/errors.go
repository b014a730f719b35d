package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Success: false, Error: message}, statusCode)
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
