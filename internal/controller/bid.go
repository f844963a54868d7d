package controller

import (
	"net/http"

	"gigflow/internal/entity"
	"gigflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}

	outer.GET("/gigs/:gigId/bids", h.GetGigBids)
	outer.POST("/gigs/:gigId/bids", h.PostBid)
	outer.PUT("/gigs/:gigId/bids/:bidId/hire", h.HireBid)
	outer.GET("/bids/my", h.GetUserBids)

	return h
}

// /gigs/:gigId/bids
func (h *bidRoutesHandler) GetGigBids(c echo.Context) error {
	bids, err := h.bidService.GetBidsForGig(c.Request().Context(), c.Param("gigId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, bids)
}

type postBidInput struct {
	BidderName string  `json:"bidderName" validate:"max=100"`
	Message    string  `json:"message" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

// POST /gigs/:gigId/bids
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	username := c.QueryParam("username")
	if username == defaultUsername {
		return respondMissingUsername(c)
	}

	var input postBidInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	model := &entity.CreateBidInput{
		GigId: c.Param("gigId"), BidderUsername: username, BidderName: input.BidderName,
		Message: input.Message, Price: input.Price,
	}

	bid, err := h.bidService.CreateBid(c.Request().Context(), model)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, bid)
}

// /gigs/:gigId/bids/:bidId/hire
func (h *bidRoutesHandler) HireBid(c echo.Context) error {
	username := c.QueryParam("username")
	if username == defaultUsername {
		return respondMissingUsername(c)
	}

	result, err := h.bidService.HireBid(c.Request().Context(), c.Param("gigId"), c.Param("bidId"), username)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

type getUserBidsInput struct {
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
	Username string `query:"username"`
}

func newGetUserBidsInput() getUserBidsInput {
	return getUserBidsInput{Limit: defaultLimit, Offset: defaultOffset, Username: defaultUsername}
}

// /bids/my
func (h *bidRoutesHandler) GetUserBids(c echo.Context) error {
	var input = newGetUserBidsInput()
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
	bids, err := h.bidService.GetUserBids(c.Request().Context(), input.Username, pg)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, bids)
}
