package http

import (
	"encoding/json"
	"net/http"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/utils"
	"bazaar-be/models"
)

// createCatalogRequest is the payload of POST /api/seller/create-catalog.
// An empty or absent product list is valid: the catalog is created bare.
type createCatalogRequest struct {
	Products []models.Product `json:"products" validate:"dive"`
}

func (h *Handler) createCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("catalog payload failed validation")
		writeFailure(w, "every product needs a name and a positive price", http.StatusBadRequest)
		return
	}

	sellerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	catalogID, err := h.services.CatalogService.CreateCatalog(ctx, sellerID, req.Products)
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("catalog creation failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("seller_id", sellerID).Int64("catalog_id", catalogID).Int("products_count", len(req.Products)).Msg("catalog created")

	utils.WriteJSON(w, models.CreateCatalogResponse{
		Response:  models.Response{Success: true, Message: "catalog created"},
		CatalogID: catalogID,
	}, http.StatusCreated)
}

func (h *Handler) sellerOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sellerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	orders, err := h.services.OrderService.OrdersBySeller(ctx, sellerID)
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("order listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SellerOrdersResponse{
		Response:    models.Response{Success: true},
		TotalOrders: len(orders),
		Orders:      orders,
	}, http.StatusOK)
}
