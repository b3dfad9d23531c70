// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindRequest decodes and validates the request into req. When it returns false the error
// response has already been written and handled is what the handler must return.
func bindRequest(c echo.Context, req any) (ok bool, handled error) {
	if err := c.Bind(req); err != nil {
		return false, response.Problem(c, domainerrors.ErrInvalidInput, nil)
	}

	if err := c.Validate(req); err != nil {
		fields := validator.FieldErrors(err)
		if fields == nil {
			return false, err
		}

		return false, response.Problem(c, domainerrors.ErrValidationFailed, fields)
	}

	return true, nil
}

func unauthorized(c echo.Context) error {
	return response.Problem(c, domainerrors.ErrUnauthorized, nil)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
