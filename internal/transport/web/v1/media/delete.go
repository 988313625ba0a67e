package media

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/transport/web/logx"
	"github.com/EgorLis/media-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/media-vault/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete media
// @Description Удаление окончательное, без корзины. Требует X-Admin-Secret.
// @Tags        media
// @Produce     json
// @Param       id             path   string true "media id"
// @Param       X-Admin-Secret header string true "общий секрет"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/media/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "media.delete"
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

	if err := h.Repo.MediaDelete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "media_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	_ = h.Cache.Del(r.Context(), domain.CacheKeyMediaMeta(id))
	h.bumpListVersion(r.Context())

	logx.Info(h.Log, reqID, op, "ok", "media_id", id)
	v1.WriteOKResponse(w, r, map[string]bool{id.String(): true})
}
