// Package api exposes the catalogue over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"shopflow/pkg/logger"
	"shopflow/pkg/order"
	"shopflow/pkg/product"
)

//go:generate mockgen -destination=apimock/mock_service.go -package=apimock shopflow/pkg/api Service

// Service is the catalogue behaviour the handlers depend on.
type Service interface {
	CreateProduct(ctx context.Context, value string) (product.Product, error)
	GetProduct(ctx context.Context, key int) (product.Product, error)
	UpdateProduct(ctx context.Context, key int, value string) (product.Product, error)
	DeleteProduct(ctx context.Context, key int) error
	ListProducts(ctx context.Context) []product.Product

	CreateOrder(ctx context.Context, productKeys []int) (order.Order, error)
	GetOrder(ctx context.Context, id int) (order.Order, error)
	UpdateOrder(ctx context.Context, id int, productKeys []int) (order.Order, error)
	DeleteOrder(ctx context.Context, id int) error
	ListOrders(ctx context.Context) []order.Order
}

// Handler serves the product and order endpoints.
type Handler struct {
	svc    Service
	log    *logger.Logger
	tracer trace.Tracer
}

// New creates a Handler. tracer may be nil, in which case the global
// provider is used.
func New(svc Service, log *logger.Logger, tracer trace.Tracer) *Handler {
	return &Handler{svc: svc, log: log, tracer: tracer}
}

// productRequest is the body accepted by product create and update.
type productRequest struct {
	Value *string `json:"value" swaggertype:"string"`
}

// orderRequest is the body accepted by order create and update.
type orderRequest struct {
	Products []int `json:"products"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type productResponse struct {
	Message string          `json:"message"`
	Product product.Product `json:"product"`
}

type orderResponse struct {
	Message string      `json:"message"`
	Order   order.Order `json:"order"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error(ctx, "encode response", "error", err)
	}
}

func (h *Handler) writeDetail(ctx context.Context, w http.ResponseWriter, status int, detail string) {
	h.writeJSON(ctx, w, status, errorResponse{Detail: detail})
}

// writeError maps a catalogue error onto a status code. Unknown errors are
// logged and reported as 500.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	var pnf *order.ProductNotFoundError
	switch {
	case errors.As(err, &pnf),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, order.ErrNotFound):
		h.writeDetail(ctx, w, http.StatusNotFound, err.Error())
	case errors.Is(err, product.ErrDuplicateKey),
		errors.Is(err, order.ErrDuplicateID):
		h.writeDetail(ctx, w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error(ctx, op, "error", err)
		h.writeDetail(ctx, w, http.StatusInternalServerError, "internal error")
	}
}
