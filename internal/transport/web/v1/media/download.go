package media

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/transport/web/logx"
	"github.com/EgorLis/media-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/media-vault/internal/transport/web/v1"
)

// Download godoc
// @Summary     Download media as attachment
// @Tags        media
// @Produce     audio/mpeg
// @Produce     video/mp4
// @Param       id path string true "media id"
// @Success     200 {file} []byte
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/media/{id}/download [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	const op = "media.download"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad media id", err, "raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	m, body, err := h.Repo.MediaByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "media lookup failed", err, "media_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", domain.MimeForFilename(m.Filename))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", m.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Last-Modified", v1.HTTPTime(m.UploadedAt))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	logx.Info(h.Log, reqID, op, "ok", "media_id", m.ID, "size", len(body))
}
