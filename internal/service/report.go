package service

import (
	"context"

	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports"
)

// ReportService fronts the dashboard aggregations. All read-only.
type ReportService struct {
	repo ports.ReportRepo
}

func NewReportService(repo ports.ReportRepo) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	return s.repo.Summary(ctx)
}

func (s *ReportService) PerEvent(ctx context.Context) ([]*domain.EventReport, error) {
	return s.repo.PerEvent(ctx)
}
