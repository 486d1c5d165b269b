package pgsql

import (
	portsrepo "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository is the Postgres implementation of the ledger store.
// Account and transaction access share one type because every write path
// touches both tables inside the same database transaction.
type PgxLedgerRepository struct {
	BaseRepository
	pool *pgxpool.Pool
}

// newPgxLedgerRepository creates a new repository for account and transaction data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		pool:           pool,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo: ledgerRepo,
	}
}
