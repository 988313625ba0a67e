package domain

import "context"

// Типы медиа для фильтра списка
const (
	MediaTypeMusic = "music" // .mp3
	MediaTypeVideo = "video" // .mp4
)

// Фильтры списка
type MediaFilter struct {
	Query string // подстрока title, без учёта регистра
	Type  string // music|video; пусто — все
	Limit int    // >0 — верхняя граница выборки; иначе все записи
}

type MediaRepo interface {
	Close()
	Ping(context.Context) error

	// CreateMedia сохраняет новую запись. Тело не может быть пустым,
	// расширение filename — только из белого списка (ErrBadParams).
	CreateMedia(ctx context.Context, filename, title string, content []byte) (Media, error)

	// MediaByID возвращает метаданные и полное тело. ErrNotFound, если записи нет.
	MediaByID(ctx context.Context, id MediaID) (Media, []byte, error)

	// MediaMetaByID — только метаданные (для заголовков/удаления).
	MediaMetaByID(ctx context.Context, id MediaID) (Media, error)

	MediaDelete(ctx context.Context, id MediaID) error
	MediaRename(ctx context.Context, id MediaID, newTitle string) error

	// MediaList — метаданные без тел, uploaded_at DESC.
	MediaList(ctx context.Context, f MediaFilter) ([]Media, error)

	// TotalSize — суммарный размер всех живых записей в байтах.
	// Отражает все зафиксированные вставки/удаления на момент вызова.
	TotalSize(ctx context.Context) (int64, error)
}
