package services

import (
	"context"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Operation    OperationSvcFacade
	Revenue      RevenueSvcFacade
	GoalProgress GoalProgressService
	Analysis     AnalysisService
}

// EventPublisher delivers committed revenue events to interested consumers.
type EventPublisher interface {
	PublishRevenueEvent(ctx context.Context, event domain.RevenueEvent) error
}
