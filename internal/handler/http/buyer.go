package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/utils"
	"bazaar-be/models"
)

func (h *Handler) listOfSellers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sellers, err := h.services.CatalogService.GetSellers(ctx)
	if err != nil {
		log.Err(err).Msg("seller listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SellersResponse{
		Response: models.Response{Success: true},
		Count:    len(sellers),
		Sellers:  sellers,
	}, http.StatusOK)
}

func (h *Handler) sellerCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sellerID, err := sellerIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid seller id in path")
		writeFailure(w, "invalid seller id", http.StatusBadRequest)
		return
	}

	catalog, err := h.services.CatalogService.SellerCatalog(ctx, sellerID)
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("seller catalog lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SellerCatalogResponse{
		Response: models.Response{Success: true},
		Data:     catalog,
	}, http.StatusOK)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sellerID, err := sellerIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid seller id in path")
		writeFailure(w, "invalid seller id", http.StatusBadRequest)
		return
	}

	// The buyer identity comes from the verified token, never from the body.
	buyerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	orderID, err := h.services.OrderService.PlaceOrder(ctx, buyerID, sellerID)
	if err != nil {
		log.Err(err).Int64("buyer_id", buyerID).Int64("seller_id", sellerID).Msg("order placement failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("buyer_id", buyerID).Int64("seller_id", sellerID).Int64("order_id", orderID).Msg("order placed")

	utils.WriteJSON(w, models.CreateOrderResponse{
		Response: models.Response{Success: true, Message: "order created"},
		OrderID:  orderID,
	}, http.StatusOK)
}

func sellerIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "sellerID"), 10, 64)
}
