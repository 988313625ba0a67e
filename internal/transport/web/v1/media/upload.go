package media

import (
	"io"
	"net/http"

	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/transport/web/logx"
	"github.com/EgorLis/media-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/media-vault/internal/transport/web/v1"
)

// Upload godoc
// @Summary     Upload media file
// @Description multipart: file (обязательно, .mp3/.mp4), title (опционально; по умолчанию — исходное имя файла). Перед записью проверяется общая квота хранилища.
// @Tags        media
// @Accept      multipart/form-data
// @Produce     json
// @Param       file  formData file   true  "файл .mp3 или .mp4"
// @Param       title formData string false "отображаемое название"
// @Success     200 {object} domain.APIEnvelope{data=domain.Media}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     507 {object} domain.APIEnvelope "квота хранилища исчерпана"
// @Router      /v1/media [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "media.upload"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		logx.Error(h.Log, reqID, op, "parse form failed", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		logx.Error(h.Log, reqID, op, "missing file", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logx.Error(h.Log, reqID, op, "read file failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	// валидация до допуска: незачем считать квоту для заведомо плохого файла
	if err := domain.ValidateUpload(header.Filename, content); err != nil {
		logx.Error(h.Log, reqID, op, "validation failed", err, "filename", header.Filename)
		v1.WriteDomainError(w, r, err)
		return
	}

	// допуск по квоте; при отказе никакой записи не происходит
	if err := h.Guard.Admit(r.Context(), int64(len(content))); err != nil {
		logx.Error(h.Log, reqID, op, "admission rejected", err, "candidate", len(content))
		v1.WriteDomainError(w, r, err)
		return
	}

	m, err := h.Repo.CreateMedia(r.Context(), header.Filename, r.FormValue("title"), content)
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	h.bumpListVersion(r.Context())

	logx.Info(h.Log, reqID, op, "ok", "media_id", m.ID, "filename", m.Filename, "size", m.SizeBytes)
	v1.WriteOKData(w, r, m)
}
