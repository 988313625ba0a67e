package media

import (
	"log"

	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/quota"
)

type Handler struct {
	Log   *log.Logger
	Repo  domain.MediaRepo
	Cache domain.Cache
	Guard *quota.Guard

	// Общий секрет для переименования/удаления. Сравнивается на строгое
	// равенство — без пользователей, хэширования и ротации.
	Secret string

	// Порог буферизации multipart в памяти; сам размер тела ограничивает
	// MaxBytesReader на роутере тем же значением
	MaxUploadBytes int64

	ListTTL int // секунд
	MetaTTL int // секунд
}
