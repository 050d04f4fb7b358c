package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsUnwrapsChain(t *testing.T) {
	base := ProductNotFound()
	wrapped := fmt.Errorf("loading product: %w", base)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "PRODUCT_NOT_FOUND", got.Code)
	assert.Equal(t, http.StatusNotFound, got.Status)
}

func TestAsRejectsPlainErrors(t *testing.T) {
	_, ok := As(errors.New("disk full"))
	assert.False(t, ok)
}

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{ProductNotFound(), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{SupplierNotFound(), http.StatusNotFound, "SUPPLIER_NOT_FOUND"},
		{CategoryNotFound(), http.StatusNotFound, "CATEGORY_NOT_FOUND"},
		{PurchaseOrderNotFound(), http.StatusNotFound, "PURCHASE_ORDER_NOT_FOUND"},
		{InsufficientStock(), http.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{InvalidStatus("bad"), http.StatusBadRequest, "INVALID_STATUS"},
		{CategoryHasProducts(), http.StatusBadRequest, "CATEGORY_HAS_PRODUCTS"},
		{DuplicateValue("dup"), http.StatusConflict, "DUPLICATE_VALUE"},
		{Forbidden("no"), http.StatusForbidden, "FORBIDDEN"},
		{Unauthorized("no"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{DatabaseUnavailable(), http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE"},
		{Validation(nil), http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.code)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestErrorString(t *testing.T) {
	err := InsufficientStock()
	assert.Equal(t, "INSUFFICIENT_STOCK: Insufficient stock for this transaction", err.Error())
}
