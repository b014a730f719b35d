package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"carousel/cmd/app"
	"carousel/internal/config"
	"carousel/internal/database"
	handlers "carousel/internal/handler"
	"carousel/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler)
	router.HandleFunc("/health", handlers.HealthHandler)

	router.HandleFunc("/api/pins", handler.PinsHandler)
	router.HandleFunc("/api/pins/{id}", handler.PinHandler)

	router.HandleFunc("/api/images", handler.GetImages)
	router.HandleFunc("/api/upload", handler.UploadImage)

	router.HandleFunc("/uploads/{filename}", handler.ServeUpload)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)
	fmt.Printf("Каталог загрузок: %s\n", cfg.UploadDir)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
