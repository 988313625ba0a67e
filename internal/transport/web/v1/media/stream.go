package media

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/transport/web/logx"
	"github.com/EgorLis/media-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/media-vault/internal/transport/web/v1"
)

// Stream godoc
// @Summary     Stream media with byte-range support
// @Description Отдаёт тело файла целиком или диапазоном (заголовок Range: bytes=start-end). Нечитаемый Range — полный ответ 200, start за концом файла — 416.
// @Tags        media
// @Produce     audio/mpeg
// @Produce     video/mp4
// @Param       id    path   string true  "media id"
// @Param       Range header string false "bytes=<start>-<end>"
// @Success     200 {file} []byte
// @Success     206 {file} []byte
// @Failure     404 {object} domain.APIEnvelope
// @Failure     416 "range start beyond end of file"
// @Router      /v1/media/{id}/stream [get]
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	const op = "media.stream"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad media id", err, "raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// HEAD: только заголовки, тело из БД не поднимаем
	if r.Method == http.MethodHead {
		h.streamHead(w, r, id)
		return
	}

	m, body, err := h.Repo.MediaByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "media lookup failed", err, "media_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	size := int64(len(body))
	mime := domain.MimeForFilename(m.Filename)
	w.Header().Set("Last-Modified", v1.HTTPTime(m.UploadedAt))

	start, end, ok := parseRange(r.Header.Get("Range"), size)
	if !ok {
		// Range отсутствует или не распознан — полный ответ без
		// range-заголовков
		w.Header().Set("Content-Type", mime)
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		logx.Info(h.Log, reqID, op, "full content", "media_id", m.ID, "size", size)
		return
	}

	if start >= size {
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		logx.Info(h.Log, reqID, op, "range not satisfiable", "media_id", m.ID, "start", start, "size", size)
		return
	}

	if end > size-1 {
		end = size - 1
	}
	// границы включительные; при end < start отдаём пустой срез
	lo, hi := start, end+1
	if hi < lo {
		hi = lo
	}
	chunk := body[lo:hi]

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Length", strconv.Itoa(len(chunk)))
	w.WriteHeader(http.StatusPartialContent)
	_, _ = w.Write(chunk)
	logx.Info(h.Log, reqID, op, "partial content", "media_id", m.ID,
		"range", fmt.Sprintf("%d-%d/%d", start, end, size), "len", len(chunk))
}

// streamHead отвечает метаданными: размер и тип без тела. Мета идёт
// через кэш, чтобы HEAD-ы плееров не дёргали БД.
func (h *Handler) streamHead(w http.ResponseWriter, r *http.Request, id domain.MediaID) {
	const op = "media.stream_head"
	reqID := mw.RequestIDFromCtx(r.Context())

	var m domain.Media
	hit := false
	if b, err := h.Cache.Get(r.Context(), domain.CacheKeyMediaMeta(id)); err == nil && len(b) > 0 {
		if err := json.Unmarshal(b, &m); err == nil {
			hit = true
		}
	}
	if !hit {
		meta, err := h.Repo.MediaMetaByID(r.Context(), id)
		if err != nil {
			logx.Error(h.Log, reqID, op, "meta lookup failed", err, "media_id", id)
			v1.WriteDomainError(w, r, err)
			return
		}
		m = meta
		if buf, err := json.Marshal(m); err == nil {
			_ = h.Cache.Set(r.Context(), domain.CacheKeyMediaMeta(id), buf, h.MetaTTL)
		}
	}

	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Type", domain.MimeForFilename(m.Filename))
	w.Header().Set("Content-Length", strconv.FormatInt(m.SizeBytes, 10))
	w.Header().Set("Last-Modified", v1.HTTPTime(m.UploadedAt))
	w.WriteHeader(http.StatusOK)
	logx.Info(h.Log, reqID, op, "head ok", "media_id", m.ID, "cache_hit", hit)
}
