package handler

import (
	"context"
	"net/http"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/dto"
	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Cashflow(ctx context.Context, caller usecase.Identity, input usecase.CashflowInput) ([]domain.CashflowPoint, error)
	VerifyConsistency(ctx context.Context) ([]domain.BalanceDrift, error)
}

// ReportHandler serves dashboard aggregates and the consistency check.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Cashflow returns per-day income/expense totals.
func (h *ReportHandler) Cashflow(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input usecase.CashflowInput
	if from, ok := parseTimeQuery(r, "from"); ok {
		input.From = &from
	}
	if to, ok := parseTimeQuery(r, "to"); ok {
		input.To = &to
	}

	points, err := h.reportUC.Cashflow(r.Context(), caller, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, "ok", dto.CashflowFromDomain(points))
}

// Verify reports accounts whose cached balance disagrees with their movements.
func (h *ReportHandler) Verify(w http.ResponseWriter, r *http.Request) {
	drifts, err := h.reportUC.VerifyConsistency(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	message := "ledger consistent"
	if len(drifts) > 0 {
		message = "balance drift detected"
	}

	writeData(w, http.StatusOK, message, dto.BalanceDriftsFromDomain(drifts))
}
