package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
)

type Storage interface {
	IsAllowed(fileName string) bool
	Save(fileName string, src io.Reader) (string, error)
	Path(storedName string) string
}

// расширения фиксированы и проверяются без учета регистра
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type LocalStorage struct {
	dir string
}

// NewLocalStorage создаёт каталог загрузок, если его ещё нет.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("путь к каталогу загрузок не может быть пустым")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог загрузок %s: %w", dir, err)
	}

	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) IsAllowed(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return allowedExtensions[ext]
}

// Save записывает файл под уникальным именем: xid-токен плюс исходное
// расширение в нижнем регистре. Уникальность имени и исключает коллизии
// между загрузками, никакой проверки занятости имени не требуется.
func (s *LocalStorage) Save(fileName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("недопустимый формат файла: %s", fileName)
	}

	storedName := xid.New().String() + ext
	filePath := filepath.Join(s.dir, storedName)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("не удалось создать файл %s: %w", filePath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("не удалось записать файл %s: %w", filePath, err)
	}

	return storedName, nil
}

func (s *LocalStorage) Path(storedName string) string {
	return filepath.Join(s.dir, filepath.Base(storedName))
}
