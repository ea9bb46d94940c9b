package httpapi

import (
	"net/http"
	"strings"

	"github.com/rimrim990/delivery-service/internal/audit"
	"github.com/rimrim990/delivery-service/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fieldErrors
	errs.requireEmail("email", req.Email)
	errs.requireNonEmpty("password", req.Password)
	if len(errs) > 0 {
		writeFail(w, http.StatusBadRequest, errs...)
		return
	}
	pair, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	audit.LogEvent(r.Context(), "auth.login", map[string]any{"email": req.Email})
	writeData(w, http.StatusOK, pair)
}

func (a *API) handleReissue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	header := r.Header.Get(authorizationHeader)
	if strings.TrimSpace(header) == "" {
		writeFail(w, http.StatusBadRequest, "Authorization header is required")
		return
	}
	pair, err := a.auth.Reissue(r.Context(), header)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	audit.LogEvent(r.Context(), "auth.reissue", nil)
	writeData(w, http.StatusOK, pair)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	City     string `json:"city"`
	Street   string `json:"street"`
	ZipCode  string `json:"zipCode"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fieldErrors
	errs.requireEmail("email", req.Email)
	errs.requireNonEmpty("password", req.Password)
	errs.requireLength("username", req.Username, 3, 12)
	errs.requireNonEmpty("city", req.City)
	errs.requireNonEmpty("street", req.Street)
	errs.requireZipCode("zipCode", req.ZipCode)
	if len(errs) > 0 {
		writeFail(w, http.StatusBadRequest, errs...)
		return
	}
	info, err := a.auth.Register(r.Context(), auth.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		City:     req.City,
		Street:   req.Street,
		ZipCode:  req.ZipCode,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	audit.LogEvent(r.Context(), "auth.register", map[string]any{"email": info.Email})
	writeData(w, http.StatusCreated, info)
}
