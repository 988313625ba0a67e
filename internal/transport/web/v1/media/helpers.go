package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/EgorLis/media-vault/internal/domain"
)

// формирует стабильный ключ кэша списка; версия инкрементируется при
// любой мутации, так что инвалидация сводится к протуханию старых ключей
func (h *Handler) listCacheKey(ctx context.Context, q, typ string, limit int) string {
	ver := "0"
	if b, err := h.Cache.Get(ctx, domain.CacheKeyListVersion); err == nil && len(b) > 0 {
		ver = string(b)
	}
	parts := []string{
		"q=" + q,
		"type=" + typ,
		fmt.Sprintf("limit=%d", limit),
	}
	return fmt.Sprintf("list:v%s:%s", ver, sha256hex(strings.Join(parts, "&")))
}

func (h *Handler) bumpListVersion(ctx context.Context) {
	if _, err := h.Cache.Incr(ctx, domain.CacheKeyListVersion); err != nil {
		h.Log.Printf("list version bump failed: %v", err)
	}
}

func sha256hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func (h *Handler) secretMatches(given string) bool {
	return h.Secret != "" && given == h.Secret
}

func uploadedTime(m domain.Media) string {
	return m.UploadedAt.Format("2006-01-02 15:04:05")
}
