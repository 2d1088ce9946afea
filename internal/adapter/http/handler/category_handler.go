package handler

import (
	"context"
	"net/http"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/dto"
	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// CategoryService defines the behavior needed by CategoryHandler.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

// CategoryHandler serves the category table.
type CategoryHandler struct {
	categoryUC CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryUC CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// List returns every category.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUC.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, "ok", dto.CategoriesFromDomain(categories))
}
