package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/dto"
	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// BusinessService defines the behavior needed by BusinessHandler.
type BusinessService interface {
	CreateBusiness(ctx context.Context, caller usecase.Identity, input usecase.CreateBusinessInput) (*domain.Business, error)
}

// BusinessHandler handles tenant onboarding requests.
type BusinessHandler struct {
	businessUC BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessUC BusinessService) *BusinessHandler {
	return &BusinessHandler{businessUC: businessUC}
}

// Create creates a business for the calling user.
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	business, err := h.businessUC.CreateBusiness(r.Context(), caller, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "business created", dto.BusinessFromDomain(business))
}
