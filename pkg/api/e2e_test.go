package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shopflow/pkg/api"
	"shopflow/pkg/catalog"
	"shopflow/pkg/logger"
	"shopflow/pkg/order"
	"shopflow/pkg/product"
)

type client struct {
	t   *testing.T
	srv *httptest.Server
}

func newClient(t *testing.T) *client {
	log := logger.New(io.Discard, logger.LevelInfo, "test", nil)
	srv := httptest.NewServer(api.New(catalog.New(log), log, nil).Router())
	t.Cleanup(srv.Close)
	return &client{t: t, srv: srv}
}

func (c *client) call(method, path, body string, out any) int {
	c.t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, rd)
	require.NoError(c.t, err)
	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type orderEnvelope struct {
	Message string      `json:"message"`
	Order   order.Order `json:"order"`
}

func TestEndToEnd(t *testing.T) {
	c := newClient(t)

	var p struct {
		Product product.Product `json:"product"`
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/products", `{"value":"A"}`, &p))
	require.Equal(t, product.Product{Key: 1, Value: "A"}, p.Product)
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/products", `{"value":"B"}`, &p))
	require.Equal(t, 2, p.Product.Key)

	var created orderEnvelope
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/orders", `{"products":[1,2]}`, &created))
	require.Equal(t, order.Order{ID: 1, Products: []product.Product{{Key: 1, Value: "A"}, {Key: 2, Value: "B"}}}, created.Order)

	var detail struct {
		Detail string `json:"detail"`
	}
	require.Equal(t, http.StatusNotFound, c.call(http.MethodPost, "/orders", `{"products":[1,99]}`, &detail))
	require.Contains(t, detail.Detail, "key=99")

	var orders []order.Order
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/orders", "", &orders))
	require.Len(t, orders, 1)

	require.Equal(t, http.StatusOK, c.call(http.MethodDelete, "/products/1", "", nil))
	require.Equal(t, http.StatusNotFound, c.call(http.MethodDelete, "/products/1", "", nil))
	require.Equal(t, http.StatusNotFound, c.call(http.MethodPost, "/orders", `{"products":[1]}`, &detail))
	require.Contains(t, detail.Detail, "key=1")

	var updated orderEnvelope
	require.Equal(t, http.StatusOK, c.call(http.MethodPut, "/orders/1", `{"products":[2]}`, &updated))
	require.Equal(t, []product.Product{{Key: 2, Value: "B"}}, updated.Order.Products)

	var got order.Order
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/orders/1", "", &got))
	require.Equal(t, updated.Order, got)

	// Ids 2 and 3 went to the rejected attempts.
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/orders", `{}`, &created))
	require.Equal(t, 4, created.Order.ID)
	require.Empty(t, created.Order.Products)

	require.Equal(t, http.StatusOK, c.call(http.MethodDelete, "/orders/1", "", nil))
	require.Equal(t, http.StatusNotFound, c.call(http.MethodGet, "/orders/1", "", nil))
}

func TestEndToEnd_ProductsListInKeyOrder(t *testing.T) {
	c := newClient(t)
	for _, v := range []string{"a", "b", "c", "d"} {
		require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/products", `{"value":"`+v+`"}`, nil))
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodDelete, "/products/2", "", nil))
	require.Equal(t, http.StatusOK, c.call(http.MethodPut, "/products/3", `{"value":"C"}`, nil))

	var list []product.Product
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/products", "", &list))
	require.Equal(t, []product.Product{{Key: 1, Value: "a"}, {Key: 3, Value: "C"}, {Key: 4, Value: "d"}}, list)

	require.Equal(t, http.StatusNotFound, c.call(http.MethodPut, "/products/2", `{"value":"x"}`, nil))
}
