package httpapi

import (
	"net/http"
	"strings"

	"github.com/rimrim990/delivery-service/internal/audit"
	"github.com/rimrim990/delivery-service/internal/delivery"
	"github.com/rimrim990/delivery-service/internal/ids"
)

type createShopRequest struct {
	Name        string            `json:"name"`
	Category    delivery.Category `json:"category"`
	MinPrice    int               `json:"minPrice"`
	Address     delivery.Address  `json:"address"`
	Description string            `json:"description"`
}

func (a *API) handleShops(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		shops, err := a.delivery.ListShops(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, http.StatusOK, shops)
	case http.MethodPost:
		var req createShopRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		shop, err := a.delivery.CreateShop(r.Context(), delivery.Shop{
			Name:        req.Name,
			Category:    req.Category,
			MinPrice:    req.MinPrice,
			Address:     req.Address,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		audit.LogEvent(r.Context(), "shop.created", map[string]any{"shop_id": shop.ID})
		writeData(w, http.StatusCreated, shop)
	default:
		methodNotAllowed(w)
	}
}

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Recommended bool   `json:"recommended"`
}

// handleShopSubtree serves /api/shops/{id}/items.
func (a *API) handleShopSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/shops/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || !ids.IsValid(parts[0]) || parts[1] != "items" {
		writeFail(w, http.StatusNotFound, "resource not found")
		return
	}
	shopID := parts[0]
	switch r.Method {
	case http.MethodGet:
		items, err := a.delivery.ListItems(r.Context(), shopID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, http.StatusOK, items)
	case http.MethodPost:
		var req createItemRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		item, err := a.delivery.AddItem(r.Context(), delivery.Item{
			ShopID:      shopID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Recommended: req.Recommended,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		audit.LogEvent(r.Context(), "item.created", map[string]any{
			"shop_id": shopID,
			"item_id": item.ID,
		})
		writeData(w, http.StatusCreated, item)
	default:
		methodNotAllowed(w)
	}
}
