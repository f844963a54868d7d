package controller

import (
	"net/http"

	"gigflow/internal/entity"
	"gigflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type gigRoutesHandler struct {
	gigService service.Gig
	validate   *validator.Validate
}

func newGigRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *gigRoutesHandler {
	h := &gigRoutesHandler{gigService: services.Gig, validate: v}

	outer.GET("/gigs", h.GetGigs)
	outer.POST("/gigs/new", h.PostGig)
	outer.GET("/gigs/my", h.GetUserGigs)
	outer.GET("/gigs/:gigId", h.GetGig)

	return h
}

type getGigsInput struct {
	Search   string `query:"search" validate:"max=100"`
	OpenOnly bool   `query:"openOnly"`
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
}

func newGetGigsInput() getGigsInput {
	return getGigsInput{OpenOnly: true, Limit: defaultLimit, Offset: defaultOffset}
}

// /gigs
func (h *gigRoutesHandler) GetGigs(c echo.Context) error {
	var input = newGetGigsInput()
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	filter := entity.GigFilter{Search: input.Search, OpenOnly: input.OpenOnly}
	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	gigs, err := h.gigService.GetGigs(c.Request().Context(), filter, pg)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, gigs)
}

type postGigInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=2000"`
	Budget      float64 `json:"budget" validate:"required,gte=10,lte=100000"`
	OwnerName   string  `json:"ownerName" validate:"max=100"`
}

// /gigs/new
func (h *gigRoutesHandler) PostGig(c echo.Context) error {
	username := c.QueryParam("username")
	if username == defaultUsername {
		return respondMissingUsername(c)
	}

	var input postGigInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	model := &entity.CreateGigInput{
		Title: input.Title, Description: input.Description, Budget: input.Budget,
		OwnerUsername: username, OwnerName: input.OwnerName,
	}

	gig, err := h.gigService.CreateGig(c.Request().Context(), model)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, gig)
}

type getUserGigsInput struct {
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
	Username string `query:"username"`
}

func newGetUserGigsInput() getUserGigsInput {
	return getUserGigsInput{Limit: defaultLimit, Offset: defaultOffset, Username: defaultUsername}
}

// /gigs/my
func (h *gigRoutesHandler) GetUserGigs(c echo.Context) error {
	var input = newGetUserGigsInput()
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	if input.Username == defaultUsername {
		return respondMissingUsername(c)
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	gigs, err := h.gigService.GetUserGigs(c.Request().Context(), input.Username, pg)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, gigs)
}

// /gigs/:gigId
func (h *gigRoutesHandler) GetGig(c echo.Context) error {
	gig, err := h.gigService.GetGigById(c.Request().Context(), c.Param("gigId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, gig)
}
