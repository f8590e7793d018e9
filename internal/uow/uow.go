package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
)

// AfterCommit runs after a successful transaction commit. Services use it to
// invalidate cached reports only once the write is durable.
type AfterCommit func(ctx context.Context)

type UoW struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn inside a transaction. After-commit hooks registered through the
// callback run only if the commit succeeds; a rollback discards them.
func (u *UoW) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx postgresrepo.DB, after func(AfterCommit)) error,
) error {
	return u.DoWithOpts(ctx, nil, fn)
}

func (u *UoW) DoWithOpts(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx postgresrepo.DB, after func(AfterCommit)) error,
) error {
	var hooks []AfterCommit

	err := u.store.RunTx(ctx, opts, func(ctx context.Context, tx postgresrepo.DB) error {
		return fn(ctx, tx, func(h AfterCommit) {
			hooks = append(hooks, h)
		})
	})
	if err != nil {
		return err
	}

	for _, h := range hooks {
		h(ctx)
	}

	return nil
}
