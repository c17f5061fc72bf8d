package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/senior-copycoders/Backend/internal/application/usecase"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps domain errors onto HTTP status codes: business-rule
// rejections are the caller's to correct (400), missing aggregates are 404,
// bad credentials are 401, anything else is a 500 with the detail kept out
// of the response body.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, valueobject.ErrCreditNotFound),
		errors.Is(err, valueobject.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, valueobject.ErrInvalidCreditParameters),
		errors.Is(err, valueobject.ErrInvalidPayment),
		errors.Is(err, valueobject.ErrPaymentBelowSchedule),
		errors.Is(err, valueobject.ErrPriorPaymentsOutstanding),
		errors.Is(err, valueobject.ErrPaymentExceedsDebt),
		errors.Is(err, valueobject.ErrPaymentAlreadyMade),
		errors.Is(err, usecase.ErrUsernameTaken):
		status = http.StatusBadRequest
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return false
	}
	return true
}
