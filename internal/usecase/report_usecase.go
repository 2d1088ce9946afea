package usecase

import (
	"context"
	"time"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// ReportUseCase serves chart aggregates and the ledger consistency check.
type ReportUseCase struct {
	reportRepo ReportRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(reportRepo ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// CashflowInput represents the requested report range.
type CashflowInput struct {
	From *time.Time
	To   *time.Time
}

// Cashflow returns per-day income/expense totals for the caller's business.
// Defaults to the last 30 days.
func (uc *ReportUseCase) Cashflow(ctx context.Context, caller Identity, input CashflowInput) ([]domain.CashflowPoint, error) {
	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	to := time.Now().UTC()
	if input.To != nil {
		to = *input.To
	}

	from := to.Add(-DefaultCashflowWindow)
	if input.From != nil {
		from = *input.From
	}

	return uc.reportRepo.Cashflow(ctx, caller.BusinessID, from, to)
}

// VerifyConsistency returns every account whose cached balance disagrees with
// the sum of its movements. An empty slice means the ledger is consistent.
func (uc *ReportUseCase) VerifyConsistency(ctx context.Context) ([]domain.BalanceDrift, error) {
	return uc.reportRepo.BalanceDrifts(ctx)
}
