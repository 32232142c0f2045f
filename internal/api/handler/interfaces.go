package handler

import (
	"context"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_handler.go -package=mocks

// ImportRunner runs budget imports on request.
type ImportRunner interface {
	RunImport(ctx context.Context) (*domain.ImportReport, error)
	TriggerManualSync() error
	GetStatus() map[string]any
}

type BudgetSummarizer interface {
	BudgetSummary(ctx context.Context, limit int) ([]domain.StoreBudgetSummary, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
