// Package storage сохраняет загруженные файлы (фото травм, вложения оповещений) на локальный диск.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_incident_tracker/internal/models"
)

// LocalStore пишет файлы в каталог dir и отдает ссылки вида baseURL/имя
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore создает хранилище и каталог для него
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save копирует файл и возвращает его публичный URL
func (s *LocalStore) Save(ctx context.Context, prefix string, upload models.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if len(ext) > 8 {
		ext = ext[:8]
	}
	name := fmt.Sprintf("%s_%d_%s%s", prefix, time.Now().UnixNano(), uuid.NewString()[:8], ext)

	src, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", upload.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete удаляет файл по URL, ранее выданному Save. Отсутствующий файл не считается ошибкой.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return fmt.Errorf("%w: %s is not stored here", models.ErrValidation, url)
	}
	name := path.Base(url)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
