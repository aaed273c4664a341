package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "shopflow/docs"
)

// Router builds the mux with all routes and middleware attached.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, h.traceMiddleware, h.logMiddleware)

	r.HandleFunc("/healthz", h.healthHandler).Methods(http.MethodGet)

	products := r.PathPrefix("/products").Subrouter()
	products.HandleFunc("", h.createProductHandler).Methods(http.MethodPost)
	products.HandleFunc("", h.listProductsHandler).Methods(http.MethodGet)
	products.HandleFunc("/{key}", h.getProductHandler).Methods(http.MethodGet)
	products.HandleFunc("/{key}", h.updateProductHandler).Methods(http.MethodPut)
	products.HandleFunc("/{key}", h.deleteProductHandler).Methods(http.MethodDelete)

	orders := r.PathPrefix("/orders").Subrouter()
	orders.HandleFunc("", h.createOrderHandler).Methods(http.MethodPost)
	orders.HandleFunc("", h.listOrdersHandler).Methods(http.MethodGet)
	orders.HandleFunc("/{id}", h.getOrderHandler).Methods(http.MethodGet)
	orders.HandleFunc("/{id}", h.updateOrderHandler).Methods(http.MethodPut)
	orders.HandleFunc("/{id}", h.deleteOrderHandler).Methods(http.MethodDelete)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}

// healthHandler reports liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) healthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
