package httpapi

import (
	"net/http"
	"strings"

	"github.com/rimrim990/delivery-service/internal/audit"
	"github.com/rimrim990/delivery-service/internal/auth"
	"github.com/rimrim990/delivery-service/internal/delivery"
	"github.com/rimrim990/delivery-service/internal/ids"
)

type placeOrderRequest struct {
	City       string                      `json:"city"`
	Street     string                      `json:"street"`
	ZipCode    string                      `json:"zipCode"`
	OrderItems []delivery.OrderItemRequest `json:"orderItems"`
}

func (a *API) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusForbidden, "access denied")
		return
	}
	var req placeOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fieldErrors
	errs.requireNonEmpty("city", req.City)
	errs.requireNonEmpty("street", req.Street)
	errs.requireZipCode("zipCode", req.ZipCode)
	if len(req.OrderItems) == 0 {
		errs.add("orderItems", "must not be empty")
	}
	if len(errs) > 0 {
		writeFail(w, http.StatusBadRequest, errs...)
		return
	}
	order, err := a.delivery.PlaceOrder(r.Context(), principal.Email, delivery.OrderRequest{
		Address: delivery.Address{City: req.City, Street: req.Street, ZipCode: req.ZipCode},
		Items:   req.OrderItems,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	audit.LogEvent(r.Context(), "order.created", map[string]any{
		"order_id":    order.ID,
		"total_price": order.TotalPrice,
	})
	writeData(w, http.StatusCreated, order)
}

// handleOrderByID serves GET /api/orders/{id}.
func (a *API) handleOrderByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if !ids.IsValid(id) {
		writeFail(w, http.StatusNotFound, "resource not found")
		return
	}
	order, err := a.delivery.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, order)
}
