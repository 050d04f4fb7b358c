// Package apperr defines the coded error taxonomy shared by services and
// handlers. Every expected failure carries an HTTP status and a
// machine-readable code; anything else surfaces as a generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain error with a wire representation.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NotFound(code, message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: message}
}

func Validation(details any) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "Invalid input data",
		Details: details,
	}
}

func BadRequest(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

func Unavailable(code, message string) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Code: code, Message: message}
}

// Common instances used across services.

func ProductNotFound() *Error {
	return NotFound("PRODUCT_NOT_FOUND", "Product not found")
}

func SupplierNotFound() *Error {
	return NotFound("SUPPLIER_NOT_FOUND", "Supplier not found")
}

func CategoryNotFound() *Error {
	return NotFound("CATEGORY_NOT_FOUND", "Category not found")
}

func PurchaseOrderNotFound() *Error {
	return NotFound("PURCHASE_ORDER_NOT_FOUND", "Purchase order not found")
}

func NotificationNotFound() *Error {
	return NotFound("NOTIFICATION_NOT_FOUND", "Notification not found")
}

func UserNotFound() *Error {
	return NotFound("USER_NOT_FOUND", "User not found")
}

func InsufficientStock() *Error {
	return BadRequest("INSUFFICIENT_STOCK", "Insufficient stock for this transaction")
}

func InvalidStatus(message string) *Error {
	return BadRequest("INVALID_STATUS", message)
}

func DuplicateValue(message string) *Error {
	return Conflict("DUPLICATE_VALUE", message)
}

func CategoryHasProducts() *Error {
	return BadRequest("CATEGORY_HAS_PRODUCTS",
		"Cannot delete category with associated products. Please reassign or delete products first.")
}

func DatabaseUnavailable() *Error {
	return Unavailable("DATABASE_UNAVAILABLE",
		"Database service is temporarily unavailable. Please try again later.")
}
