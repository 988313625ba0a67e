package media

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/transport/web/logx"
	"github.com/EgorLis/media-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/media-vault/internal/transport/web/v1"
)

// List godoc
// @Summary     List media
// @Tags        media
// @Produce     json
// @Param       q     query string false "подстрока title (без учёта регистра)"
// @Param       type  query string false "music|video"
// @Param       limit query int    false "максимум записей; без параметра — все"
// @Success     200 {object} domain.APIEnvelope{data=object}
// @Router      /v1/media [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "media.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	q := r.URL.Query().Get("q")
	typ := r.URL.Query().Get("type")
	// limit не задан — отдаём все записи: список это полная
	// упорядоченная выборка, а не страница
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	// кэш
	ckey := h.listCacheKey(r.Context(), q, typ, limit)
	b, err := h.Cache.Get(r.Context(), ckey)
	if err != nil {
		logx.Error(h.Log, reqID, op, "cache get failed", err)
	} else if len(b) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(b)
		logx.Info(h.Log, reqID, op, "cache hit")
		return
	}

	// в БД
	list, err := h.Repo.MediaList(r.Context(), domain.MediaFilter{Query: q, Type: typ, Limit: limit})
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	type mediaOut struct {
		ID        string `json:"id"`
		Filename  string `json:"filename"`
		Title     string `json:"title"`
		SizeBytes int64  `json:"size_bytes"`
		Uploaded  string `json:"uploaded"`
	}
	out := struct {
		Media []mediaOut `json:"media"`
	}{Media: make([]mediaOut, 0, len(list))}
	for _, m := range list {
		out.Media = append(out.Media, mediaOut{
			ID: m.ID.String(), Filename: m.Filename, Title: m.Title,
			SizeBytes: m.SizeBytes, Uploaded: uploadedTime(m),
		})
	}

	env := domain.OkData(out)
	buf, _ := json.Marshal(env)
	_ = h.Cache.Set(r.Context(), ckey, buf, h.ListTTL)

	logx.Info(h.Log, reqID, op, "ok", "count", len(out.Media))
	v1.WriteEnvelope(w, r, http.StatusOK, env)
}
