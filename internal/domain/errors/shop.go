package errors

import "net/http"

// Catalog
var (
	ErrProductNotFound = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", "")
	ErrInvalidSort     = NewBaseError(http.StatusBadRequest, "INVALID_SORT", "Unknown sort option", "")
	ErrCatalogInvalid  = NewBaseError(http.StatusBadRequest, "CATALOG_INVALID", "Catalog document is invalid", "")
)

// Cart
var (
	ErrInvalidQuantity = NewBaseError(http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1", "")
	ErrCartConflict    = NewBaseError(http.StatusConflict, "CART_CONFLICT", "Cart was modified concurrently, please retry", "")
)

// Orders
var (
	ErrOrderNoItems       = NewBaseError(http.StatusBadRequest, "ORDER_NO_ITEMS", "No items", "")
	ErrOrderInvalidItem   = NewBaseError(http.StatusBadRequest, "ORDER_INVALID_ITEM", "Order item is invalid", "")
	ErrOrderTotalMismatch = NewBaseError(http.StatusBadRequest, "ORDER_TOTAL_MISMATCH", "Order totals do not match item prices", "")
	ErrOrderInvalidID     = NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid order id", "")
	ErrOrderNotFound      = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", "")
	ErrOrderForbidden     = NewBaseError(http.StatusForbidden, "ORDER_FORBIDDEN", "Forbidden", "")
)

// Request handling
var (
	ErrInvalidInput     = NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", "")
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")
	ErrTooManyRequests  = NewBaseError(http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please slow down", "")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
)
