package services

import (
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
)

// ContainerOption adjusts how NewServiceContainer wires the services.
type ContainerOption func(*containerDeps)

type containerDeps struct {
	estimator portssvc.Estimator
	publisher portssvc.EventPublisher
}

// WithEstimator routes analysis through estimator instead of the in-process one.
func WithEstimator(estimator portssvc.Estimator) ContainerOption {
	return func(d *containerDeps) {
		d.estimator = estimator
	}
}

// WithPublisher sends revenue lifecycle events through publisher.
func WithPublisher(publisher portssvc.EventPublisher) ContainerOption {
	return func(d *containerDeps) {
		d.publisher = publisher
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ContainerOption) *portssvc.ServiceContainer {
	deps := &containerDeps{}
	for _, option := range options {
		option(deps)
	}
	if deps.estimator == nil {
		deps.estimator = NewLocalEstimator(nil)
	}

	revenueOpts := []RevenueServiceOption{}
	if deps.publisher != nil {
		revenueOpts = append(revenueOpts, WithEventPublisher(deps.publisher))
	}

	return &portssvc.ServiceContainer{
		Operation:    NewOperationService(repos.OperationRepo),
		Revenue:      NewRevenueService(repos.RevenueRepo, repos.OperationRepo, revenueOpts...),
		GoalProgress: NewGoalProgressService(repos.OperationRepo, repos.RevenueRepo),
		Analysis:     NewAnalysisService(repos.OperationRepo, repos.RevenueRepo, deps.estimator),
	}
}
