package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories to the given pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
	}
}
