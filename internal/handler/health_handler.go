package handlers

import "net/http"

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusResponse{
		Status:  "healthy",
		Message: "Carousel API is running!",
	}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{
		Status:  "healthy",
		Message: "Pins API is running!",
		Endpoints: []string{
			"/api/pins",
			"/api/images",
			"/api/upload",
		},
	}, http.StatusOK)
}
