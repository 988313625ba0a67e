package domain

import (
	"context"
	"io"
)

// Хранилище бинарного контента вне БД (S3/MinIO). Подключается, когда
// тела файлов выносятся из bytea-колонки; метаданные и размер всё равно
// остаются в БД. Ключи контентно-адресуемые, объекты могут разделяться
// записями — удаление записей объекты не трогает.
type BlobStorage interface {
	Ping(ctx context.Context) error
	// Сохранение нового файла, возвращает ключ и размер
	Put(ctx context.Context, r io.Reader, hintName, mime string) (storageKey string, size int64, err error)
	// Полное тело объекта
	Get(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
