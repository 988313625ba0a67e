package web

import (
	"github.com/EgorLis/media-vault/internal/domain"
	"github.com/EgorLis/media-vault/internal/quota"
)

type Deps struct {
	Repo    domain.MediaRepo
	Cache   domain.Cache
	Storage domain.BlobStorage // nil, когда контент живёт в БД
	Guard   *quota.Guard
}
