package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rimrim990/delivery-service/internal/auth"
	"github.com/rimrim990/delivery-service/internal/delivery"
)

// apiResponse is the envelope every endpoint answers with. Exactly one of
// Data and ErrorMsg is non-null.
type apiResponse struct {
	Data     any      `json:"data"`
	ErrorMsg []string `json:"errorMsg"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Data: data})
}

func writeFail(w http.ResponseWriter, status int, msgs ...string) {
	writeJSON(w, status, apiResponse{ErrorMsg: msgs})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeFail(w, http.StatusMethodNotAllowed, "method not allowed")
}

// writeServiceError maps domain errors onto the wire. Every authentication
// failure answers 403 with the error text as the message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case auth.IsTokenInvalid(err),
		errors.Is(err, auth.ErrInvalidGrantType),
		errors.Is(err, auth.ErrClaimNotFound),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrNotFound),
		errors.Is(err, auth.ErrDuplicatedEmail):
		writeFail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, delivery.ErrNotFound):
		writeFail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, delivery.ErrInvalidInput),
		errors.Is(err, delivery.ErrInvalidQuantity),
		errors.Is(err, delivery.ErrMixedShops),
		errors.Is(err, delivery.ErrBelowMinimumPrice):
		writeFail(w, http.StatusBadRequest, err.Error())
	default:
		writeFail(w, http.StatusInternalServerError, "internal server error")
	}
}
