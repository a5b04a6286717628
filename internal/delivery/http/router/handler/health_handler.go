// Package handler contains the HTTP handlers of the console API.
package handler

import (
	"net/http"
	"strconv"

	"rxconsole/internal/delivery/http/response"
	domainerrors "rxconsole/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// pageParam reads ?page=N. ok is false when the parameter is absent.
func pageParam(c echo.Context) (page int, ok bool, err error) {
	raw := c.QueryParam("page")
	if raw == "" {
		return 0, false, nil
	}

	page, err = strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, true, domainerrors.ErrInvalidPage.WithDetails(raw)
	}

	return page, true, nil
}

// withState renders a fetch failure together with the view it left behind, so the client can show
// the error state and its retry action. Other errors go to the error middleware.
func withState(c echo.Context, err error, view any) error {
	var fetchErr *domainerrors.RemoteFetchError
	if errors.As(err, &fetchErr) {
		return response.AppError(c, fetchErr, view)
	}

	return err
}

// bindAndValidate binds the request body and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return c.Validate(req)
}
