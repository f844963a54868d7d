package controller

import (
	"context"
	"net/http"
	"time"

	"gigflow/internal/service"

	"github.com/labstack/echo"
)

const pingTimeout = 2 * time.Second

type diagnosticRoutesHandler struct {
	diagnosticService service.Diagnostics
}

func newDiagnosticRoutesHandler(outer *echo.Group, services *service.Services) *diagnosticRoutesHandler {
	h := &diagnosticRoutesHandler{services.Diagnostics}
	outer.GET("/ping", h.Ping)

	return h
}

func (h *diagnosticRoutesHandler) Ping(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.diagnosticService.Ping(ctx); err != nil {
		if e := c.JSON(http.StatusServiceUnavailable, errorResponse{"Service unavailable"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, "ok")
}
