package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/EgorLis/media-vault/internal/domain"
)

const metaCols = "id, filename, title, size_bytes, uploaded_at, COALESCE(storage_key, '')"

func (r *PGRepo) CreateMedia(ctx context.Context, filename, title string, content []byte) (domain.Media, error) {
	if err := domain.ValidateUpload(filename, content); err != nil {
		return domain.Media{}, err
	}
	if title == "" {
		title = filename
	}
	safeName := domain.SanitizeFilename(filename)
	size := int64(len(content))

	// Тело: либо во внешнее хранилище, либо в bytea
	var (
		storageKey string
		body       []byte
	)
	if r.blobs != nil {
		key, _, err := r.blobs.Put(ctx, bytes.NewReader(content), safeName, domain.MimeForFilename(safeName))
		if err != nil {
			r.logger.Printf("CreateMedia blob put error: %v", err)
			return domain.Media{}, err
		}
		storageKey = key
	} else {
		body = content
	}

	q := r.qb().Insert(fmt.Sprintf("%s.media", r.schema)).
		Columns("filename", "title", "content", "storage_key", "size_bytes").
		Values(safeName, title, body, nullableStr(storageKey), size).
		Suffix("RETURNING " + metaCols)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateMedia", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.Media
	if err := row.Scan(&out.ID, &out.Filename, &out.Title, &out.SizeBytes, &out.UploadedAt, &out.StorageKey); err != nil {
		r.logger.Printf("CreateMedia scan error after %s: %v", time.Since(start), err)
		// Объект не трогаем: ключи контентно-адресуемые, его может
		// разделять другая запись с тем же содержимым
		return domain.Media{}, err
	}
	r.logger.Printf("CreateMedia ok in %s id=%s filename=%q size=%d", time.Since(start), out.ID, out.Filename, out.SizeBytes)
	return out, nil
}

func (r *PGRepo) MediaByID(ctx context.Context, id domain.MediaID) (domain.Media, []byte, error) {
	q := r.qb().Select("id", "filename", "title", "size_bytes", "uploaded_at",
		"COALESCE(storage_key, '')", "content").
		From(fmt.Sprintf("%s.media", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("MediaByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var (
		m    domain.Media
		body []byte
	)
	if err := row.Scan(&m.ID, &m.Filename, &m.Title, &m.SizeBytes, &m.UploadedAt, &m.StorageKey, &body); err != nil {
		r.logger.Printf("MediaByID scan error after %s: %v", time.Since(start), err)
		return domain.Media{}, nil, mapNoRows(err)
	}

	// Тело во внешнем хранилище — дочитываем оттуда
	if m.StorageKey != "" && r.blobs != nil {
		rc, err := r.blobs.Get(ctx, m.StorageKey)
		if err != nil {
			r.logger.Printf("MediaByID blob get error: %v", err)
			return domain.Media{}, nil, err
		}
		defer rc.Close()
		body, err = io.ReadAll(rc)
		if err != nil {
			r.logger.Printf("MediaByID blob read error: %v", err)
			return domain.Media{}, nil, err
		}
	}
	r.logger.Printf("MediaByID ok in %s id=%s size=%d", time.Since(start), m.ID, len(body))
	return m, body, nil
}

func (r *PGRepo) MediaMetaByID(ctx context.Context, id domain.MediaID) (domain.Media, error) {
	q := r.qb().Select("id", "filename", "title", "size_bytes", "uploaded_at",
		"COALESCE(storage_key, '')").
		From(fmt.Sprintf("%s.media", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("MediaMetaByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var m domain.Media
	if err := row.Scan(&m.ID, &m.Filename, &m.Title, &m.SizeBytes, &m.UploadedAt, &m.StorageKey); err != nil {
		r.logger.Printf("MediaMetaByID scan error after %s: %v", time.Since(start), err)
		return domain.Media{}, mapNoRows(err)
	}
	r.logger.Printf("MediaMetaByID ok in %s id=%s", time.Since(start), m.ID)
	return m, nil
}

func (r *PGRepo) MediaDelete(ctx context.Context, id domain.MediaID) error {
	// Удаляется только строка. Объекты во внешнем хранилище адресуются
	// по содержимому (sha256/<hex>) и могут разделяться несколькими
	// записями, поэтому живая запись с тем же содержимым должна
	// оставаться читаемой. Осиротевшие объекты безобидны.
	q := r.qb().Delete(fmt.Sprintf("%s.media", r.schema)).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("MediaDelete", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("MediaDelete exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("MediaDelete no rows affected in %s", time.Since(start))
		return domain.ErrNotFound
	}
	r.logger.Printf("MediaDelete ok in %s id=%s", time.Since(start), id)
	return nil
}

func (r *PGRepo) MediaRename(ctx context.Context, id domain.MediaID, newTitle string) error {
	if newTitle == "" {
		return domain.ErrBadParams
	}
	q := r.qb().Update(fmt.Sprintf("%s.media", r.schema)).
		Set("title", newTitle).
		Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("MediaRename", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("MediaRename exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("MediaRename no rows affected in %s", time.Since(start))
		return domain.ErrNotFound
	}
	r.logger.Printf("MediaRename ok in %s id=%s title=%q", time.Since(start), id, newTitle)
	return nil
}

func (r *PGRepo) MediaList(ctx context.Context, f domain.MediaFilter) ([]domain.Media, error) {
	sb := r.qb().Select("id", "filename", "title", "size_bytes", "uploaded_at",
		"COALESCE(storage_key, '')").
		From(fmt.Sprintf("%s.media", r.schema))

	if f.Query != "" {
		sb = sb.Where(sq.ILike{"title": "%" + f.Query + "%"})
	}
	switch f.Type {
	case domain.MediaTypeMusic:
		sb = sb.Where(sq.Expr("LOWER(filename) LIKE '%.mp3'"))
	case domain.MediaTypeVideo:
		sb = sb.Where(sq.Expr("LOWER(filename) LIKE '%.mp4'"))
	case "":
	default:
		// неизвестный тип — игнорируем
	}

	sb = sb.OrderBy("uploaded_at DESC", "id DESC")

	if f.Limit > 0 {
		sb = sb.Limit(uint64(f.Limit))
	}

	sqlStr, args, _ := sb.ToSql()
	r.logSQL("MediaList", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("MediaList query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	var res []domain.Media
	for rows.Next() {
		var m domain.Media
		if err := rows.Scan(&m.ID, &m.Filename, &m.Title, &m.SizeBytes, &m.UploadedAt, &m.StorageKey); err != nil {
			r.logger.Printf("MediaList scan error: %v", err)
			return nil, err
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("MediaList rows error: %v", err)
		return nil, err
	}
	r.logger.Printf("MediaList ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}

func (r *PGRepo) TotalSize(ctx context.Context) (int64, error) {
	q := r.qb().Select("COALESCE(SUM(size_bytes), 0)").
		From(fmt.Sprintf("%s.media", r.schema))
	sqlStr, args, _ := q.ToSql()
	r.logSQL("TotalSize", sqlStr, args)

	start := time.Now()
	var total int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		r.logger.Printf("TotalSize scan error after %s: %v", time.Since(start), err)
		return 0, err
	}
	r.logger.Printf("TotalSize ok in %s total=%d", time.Since(start), total)
	return total, nil
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func nullableStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
