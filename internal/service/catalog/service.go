// Package catalog manages the slowly changing side of the schema: movies,
// directors, rooms, and the movie/director link.
package catalog

import (
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
)

type Service struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *Service {
	return &Service{store: store}
}
