package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shopflow/pkg/otel"
)

func decodeProduct(r *http.Request) (string, bool) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		return "", false
	}
	return *req.Value, true
}

func pathInt(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(mux.Vars(r)[name])
	return n, err == nil
}

// createProductHandler creates a new product.
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body productRequest true "Product"
// @Success 200 {object} productResponse
// @Failure 400 {object} errorResponse
// @Router /products [post]
func (h *Handler) createProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createProductHandler")
	defer span.End()

	value, ok := decodeProduct(r)
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "field \"value\" is required")
		return
	}
	p, err := h.svc.CreateProduct(ctx, value)
	if err != nil {
		h.writeError(ctx, w, "create product", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, productResponse{Message: "product created", Product: p})
}

// listProductsHandler lists products in key order.
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} product.Product
// @Router /products [get]
func (h *Handler) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	h.writeJSON(ctx, w, http.StatusOK, h.svc.ListProducts(ctx))
}

// getProductHandler retrieves a product by key.
// @Summary Get product
// @Tags products
// @Produce json
// @Param key path int true "Product key"
// @Success 200 {object} product.Product
// @Failure 404 {object} errorResponse
// @Router /products/{key} [get]
func (h *Handler) getProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	key, ok := pathInt(r, "key")
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "key must be an integer")
		return
	}
	p, err := h.svc.GetProduct(ctx, key)
	if err != nil {
		h.writeError(ctx, w, "get product", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, p)
}

// updateProductHandler replaces a product's value.
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param key path int true "Product key"
// @Param product body productRequest true "Product"
// @Success 200 {object} productResponse
// @Failure 404 {object} errorResponse
// @Router /products/{key} [put]
func (h *Handler) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateProductHandler")
	defer span.End()

	key, ok := pathInt(r, "key")
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "key must be an integer")
		return
	}
	value, ok := decodeProduct(r)
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "field \"value\" is required")
		return
	}
	p, err := h.svc.UpdateProduct(ctx, key, value)
	if err != nil {
		h.writeError(ctx, w, "update product", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, productResponse{Message: "product updated", Product: p})
}

// deleteProductHandler removes a product.
// @Summary Delete product
// @Tags products
// @Produce json
// @Param key path int true "Product key"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /products/{key} [delete]
func (h *Handler) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteProductHandler")
	defer span.End()

	key, ok := pathInt(r, "key")
	if !ok {
		h.writeDetail(ctx, w, http.StatusBadRequest, "key must be an integer")
		return
	}
	if err := h.svc.DeleteProduct(ctx, key); err != nil {
		h.writeError(ctx, w, "delete product", err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "product deleted"})
}
