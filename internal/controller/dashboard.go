package controller

import (
	"net/http"

	"gigflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type dashboardRoutesHandler struct {
	dashboardService    service.Dashboard
	notificationService service.Notification
	validate            *validator.Validate
}

func newDashboardRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *dashboardRoutesHandler {
	h := &dashboardRoutesHandler{
		dashboardService:    services.Dashboard,
		notificationService: services.Notification,
		validate:            v,
	}

	outer.GET("/dashboard", h.GetDashboard)
	outer.GET("/notifications", h.GetNotifications)

	return h
}

// /dashboard
func (h *dashboardRoutesHandler) GetDashboard(c echo.Context) error {
	username := c.QueryParam("username")
	if username == defaultUsername {
		return respondMissingUsername(c)
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request().Context(), username)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

type getNotificationsInput struct {
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Username string `query:"username"`
}

// /notifications
func (h *dashboardRoutesHandler) GetNotifications(c echo.Context) error {
	var input = getNotificationsInput{Limit: defaultLimit, Username: defaultUsername}
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	if input.Username == defaultUsername {
		return respondMissingUsername(c)
	}

	notifications, err := h.notificationService.GetUserNotifications(c.Request().Context(), input.Username, int(input.Limit))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, notifications)
}
