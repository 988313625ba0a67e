package media

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/transport/web/logx"
	"github.com/EgorLis/media-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/media-vault/internal/transport/web/v1"
)

// Rename godoc
// @Summary     Rename media title
// @Description Меняет только отображаемое название; имя файла и тело неизменны. Требует X-Admin-Secret.
// @Tags        media
// @Accept      json
// @Produce     json
// @Param       id             path   string true "media id"
// @Param       X-Admin-Secret header string true "общий секрет"
// @Param       body body object{title=string} true "новое название"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/media/{id} [patch]
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	const op = "media.rename"
	reqID := mw.RequestIDFromCtx(r.Context())

	if !h.secretMatches(r.Header.Get("X-Admin-Secret")) {
		logx.Error(h.Log, reqID, op, "secret mismatch", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad media id", err, "raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	var in struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logx.Error(h.Log, reqID, op, "bad body", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if err := h.Repo.MediaRename(r.Context(), id, in.Title); err != nil {
		logx.Error(h.Log, reqID, op, "rename failed", err, "media_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	// инвалидация: мета и версия списков
	_ = h.Cache.Del(r.Context(), domain.CacheKeyMediaMeta(id))
	h.bumpListVersion(r.Context())

	logx.Info(h.Log, reqID, op, "ok", "media_id", id, "title", in.Title)
	v1.WriteOKResponse(w, r, map[string]bool{id.String(): true})
}
