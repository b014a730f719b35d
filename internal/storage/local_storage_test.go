package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_IsAllowed(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name     string
		fileName string
		allowed  bool
	}{
		{"jpg разрешён", "photo.jpg", true},
		{"jpeg разрешён", "photo.jpeg", true},
		{"png разрешён", "picture.png", true},
		{"gif разрешён", "anim.gif", true},
		{"webp разрешён", "modern.webp", true},
		{"расширение без учёта регистра", "PHOTO.JPG", true},
		{"смешанный регистр", "photo.PnG", true},
		{"exe запрещён", "malware.exe", false},
		{"svg запрещён", "vector.svg", false},
		{"без расширения", "noext", false},
		{"пустое имя", "", false},
		{"точка в середине имени", "archive.tar.gz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, store.IsAllowed(tt.fileName))
		})
	}
}

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	t.Run("Файл записывается под уникальным именем", func(t *testing.T) {
		content := []byte("fake image bytes")

		storedName, err := store.Save("My Photo.JPG", bytes.NewReader(content))

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(storedName, ".jpg"), "расширение приводится к нижнему регистру")
		assert.NotContains(t, storedName, "My Photo")

		saved, err := os.ReadFile(filepath.Join(dir, storedName))
		require.NoError(t, err)
		assert.Equal(t, content, saved)
	})

	t.Run("Повторные загрузки не пересекаются по именам", func(t *testing.T) {
		first, err := store.Save("same.png", bytes.NewReader([]byte("one")))
		require.NoError(t, err)

		second, err := store.Save("same.png", bytes.NewReader([]byte("two")))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Запрещённое расширение отклоняется до записи", func(t *testing.T) {
		_, err := store.Save("script.sh", bytes.NewReader([]byte("#!/bin/sh")))

		assert.Error(t, err)
	})
}

func TestNewLocalStorage(t *testing.T) {
	t.Run("Каталог создаётся, если его нет", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")

		_, err := NewLocalStorage(dir)

		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Пустой путь отклоняется", func(t *testing.T) {
		_, err := NewLocalStorage("")

		assert.Error(t, err)
	})
}

func TestLocalStorage_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "a.jpg"), store.Path("a.jpg"))
	// выход из каталога загрузок обрезается
	assert.Equal(t, filepath.Join(dir, "passwd"), store.Path("../../etc/passwd"))
}
