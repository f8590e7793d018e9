package service

import (
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
	redisrepo "github.com/Jaum1981/cine-api/internal/repository/redis"
	"github.com/Jaum1981/cine-api/internal/service/catalog"
	"github.com/Jaum1981/cine-api/internal/service/reports"
	"github.com/Jaum1981/cine-api/internal/service/sales"
	"github.com/Jaum1981/cine-api/internal/service/scheduling"
	"github.com/Jaum1981/cine-api/internal/uow"
)

type Services struct {
	Catalog    *catalog.Service
	Scheduling *scheduling.Service
	Sales      *sales.Service
	Reports    *reports.Service
}

type Config struct {
	Reports reports.Config
}

func NewServices(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	u *uow.UoW,
	cfg Config,
) *Services {
	return &Services{
		Catalog:    catalog.New(store),
		Scheduling: scheduling.New(store, cache, u),
		Sales:      sales.New(store, cache, u),
		Reports:    reports.New(store, cache, cfg.Reports),
	}
}
