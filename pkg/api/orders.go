package api

import (
	"encoding/json"
	"net/http"

	"shopflow/pkg/otel"
)

func decodeOrder(r *http.Request) ([]int, error) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return req.Products, nil
}

// createOrderHandler creates an order from a list of product keys.
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body orderRequest true "Product keys"
// @Success 200 {object} orderResponse
// @Failure 404 {object} errorResponse
// @Router /orders [post]
func (h *Handler) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	keys, err := decodeOrder(r)
	if err != nil {
		h.writeDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.svc.CreateOrder(ctx, keys)
	if err != nil {
		h.writeError(ctx, w, "create order", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, orderResponse{Message: "order created", Order: o})
}

// listOrdersHandler lists orders in creation order.
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders [get]
func (h *Handler) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	h.writeJSON(ctx, w, http.StatusOK, h.svc.ListOrders(ctx))
}

// getOrderHandler retrieves an order by ID.
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Router /orders/{id} [get]
func (h *Handler) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	id, ok := pathInt(r, "id")
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "id must be an integer")
		return
	}
	o, err := h.svc.GetOrder(ctx, id)
	if err != nil {
		h.writeError(ctx, w, "get order", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, o)
}

// updateOrderHandler replaces the products of an existing order.
// @Summary Update order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body orderRequest true "Product keys"
// @Success 200 {object} orderResponse
// @Failure 404 {object} errorResponse
// @Router /orders/{id} [put]
func (h *Handler) updateOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateOrderHandler")
	defer span.End()

	id, ok := pathInt(r, "id")
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "id must be an integer")
		return
	}
	keys, err := decodeOrder(r)
	if err != nil {
		h.writeDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.svc.UpdateOrder(ctx, id, keys)
	if err != nil {
		h.writeError(ctx, w, "update order", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, orderResponse{Message: "order updated", Order: o})
}

// deleteOrderHandler removes an order.
// @Summary Delete order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /orders/{id} [delete]
func (h *Handler) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteOrderHandler")
	defer span.End()

	id, ok := pathInt(r, "id")
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "id must be an integer")
		return
	}
	if err := h.svc.DeleteOrder(ctx, id); err != nil {
		h.writeError(ctx, w, "delete order", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "order deleted"})
}
