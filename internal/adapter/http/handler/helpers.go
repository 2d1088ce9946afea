package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/dto"
	"github.com/Nebur23/bizsense-ai/internal/adapter/http/middleware"
	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// writeData writes a successful enveloped JSON response.
func writeData(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Response{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// writeError writes an enveloped error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Response{
		StatusCode: status,
		Message:    message,
	})
}

// writeDomainError maps a domain error to its HTTP status and writes it.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, mapDomainError(err), err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNoBusiness),
		errors.Is(err, domain.ErrBusinessMismatch),
		errors.Is(err, domain.ErrDuplicateAccountName):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrBusinessNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBusinessExists),
		errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownTransactionType),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNoAllocations),
		errors.Is(err, domain.ErrCategoryRequired),
		errors.Is(err, domain.ErrMalformedTransfer),
		errors.Is(err, domain.ErrTransferSameAccount),
		errors.Is(err, domain.ErrTransferFlagsForbidden),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrInvalidBusiness),
		errors.Is(err, domain.ErrInvalidAccountName),
		errors.Is(err, domain.ErrUnknownAccountType),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooWeak):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// callerIdentity extracts the authenticated caller from the request context.
func callerIdentity(r *http.Request) (usecase.Identity, bool) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		return usecase.Identity{}, false
	}
	return usecase.Identity{UserID: user.ID, BusinessID: user.BusinessID}, true
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
