package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductListEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products?limit=2&page=1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page struct {
		Items      []json.RawMessage `json:"items"`
		Page       int               `json:"page"`
		Limit      int               `json:"limit"`
		TotalItems int               `json:"totalItems"`
		TotalPages int               `json:"totalPages"`
	}
	decode(t, resp, &page)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 6, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	// a page past the end clamps instead of erroring
	resp = doJSON(t, app, "GET", "/api/products?limit=2&page=99", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &page)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 2)
}

func TestProductListUnboundedReturnsBareArray(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products?limit=0", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []struct {
		ID string `json:"id"`
	}
	decode(t, resp, &items)
	assert.Len(t, items, 6)
}

func TestProductListRejectsUnknownSort(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products?sort=alphabetical", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductGetIncludesAvailability(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products/prod_tshirt_1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Product struct {
			ID    string `json:"id"`
			Price string `json:"price"`
		} `json:"product"`
		Availability struct {
			Status string `json:"status"`
		} `json:"availability"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "prod_tshirt_1", body.Product.ID)
	assert.NotEmpty(t, body.Availability.Status)

	resp = doJSON(t, app, "GET", "/api/products/prod_missing", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var er struct {
		Error string `json:"error"`
	}
	decode(t, resp, &er)
	assert.Equal(t, "NOT_FOUND", er.Error)
}

func TestCategoryList(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cats []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decode(t, resp, &cats)
	assert.Len(t, cats, 3)
}
