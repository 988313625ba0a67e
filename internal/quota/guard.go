package quota

import (
	"context"
	"log"

	"github.com/EgorLis/media-vault/internal/domain"
)

// Источник текущего суммарного размера хранилища
type SizeSource interface {
	TotalSize(ctx context.Context) (int64, error)
}

// Guard — проверка квоты перед записью. Чистый допуск: сам байты не
// держит и ничего не пишет.
type Guard struct {
	logger *log.Logger
	store  SizeSource
	limit  int64
}

func New(logger *log.Logger, store SizeSource, limitBytes int64) *Guard {
	return &Guard{logger: logger, store: store, limit: limitBytes}
}

func (g *Guard) Limit() int64 { return g.limit }

// Admit разрешает запись candidate байт, если сумма с текущим размером
// не превышает квоту. Проверка и последующая вставка — отдельные
// операции: два конкурентных допуска могут пройти оба, квота может быть
// кратковременно превышена. Окно гонки сохранено как в исходном
// поведении системы.
func (g *Guard) Admit(ctx context.Context, candidate int64) error {
	total, err := g.store.TotalSize(ctx)
	if err != nil {
		g.logger.Printf("admit: total size failed: %v", err)
		return err
	}
	if total+candidate > g.limit {
		g.logger.Printf("admit: rejected total=%d candidate=%d limit=%d", total, candidate, g.limit)
		return domain.ErrCapacityExceeded
	}
	g.logger.Printf("admit: ok total=%d candidate=%d limit=%d", total, candidate, g.limit)
	return nil
}
