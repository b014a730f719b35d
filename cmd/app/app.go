package app

import (
	"log"

	"carousel/internal/config"
	"carousel/internal/database"
	"carousel/internal/repository"
	"carousel/internal/service"
	"carousel/internal/storage"
)

// App собирает зависимости процесса: соединение с БД открывается один раз
// при старте, каталог загрузок создаётся при необходимости.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// local storage
	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Не удалось инициализировать хранилище файлов: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services
}
