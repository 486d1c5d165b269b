package services

import (
	portsrepo "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/services"
	"github.com/fintrack-labs/bank-ledger-service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The fraud engine only reads transaction history, so it takes the
	// narrow reader port rather than the full ledger facade.
	fraudSvc := NewFraudService(repos.LedgerRepo)

	container.Bank = NewBankService(repos.LedgerRepo, fraudSvc)

	return container
}
