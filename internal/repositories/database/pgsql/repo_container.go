package pgsql

import (
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OperationRepo: newPgxOperationRepository(dbPool),
		RevenueRepo:   newPgxRevenueRepository(dbPool),
	}
}
