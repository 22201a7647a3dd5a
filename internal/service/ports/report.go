package ports

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/domain"
)

type ReportRepo interface {
	Summary(ctx context.Context) (*domain.SummaryReport, error)
	PerEvent(ctx context.Context) ([]*domain.EventReport, error)
}
