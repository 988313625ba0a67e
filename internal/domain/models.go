package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type MediaID = uuid.UUID

// Метаданные медиафайла (без тела)
type Media struct {
	ID         MediaID   `json:"id"`
	Filename   string    `json:"filename"` // нормализованное имя файла (.mp3/.mp4)
	Title      string    `json:"title"`    // отображаемое название; по умолчанию — исходное имя файла
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`

	// Где лежит контент, если вынесен из БД (S3/MinIO); пусто — контент в bytea
	StorageKey string `json:"-"`
}
