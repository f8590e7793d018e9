// Package sales manages tickets and payment details. Every write invalidates
// the cached revenue reports after commit.
package sales

import (
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
	redisrepo "github.com/Jaum1981/cine-api/internal/repository/redis"
	"github.com/Jaum1981/cine-api/internal/uow"
)

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	uow   *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, u *uow.UoW) *Service {
	return &Service{store: store, cache: cache, uow: u}
}
