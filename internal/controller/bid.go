package controller

import (
	"net/http"

	"job-management-api/internal/entity"
	"job-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}
	outer.POST("/bids/new", h.PostBid)
	outer.GET("/bids", h.GetBids)
	outer.GET("/bids/:bidId", h.GetBid)

	outer.PUT("/bids/:bidId/status", h.SetBidStatus)
	outer.PATCH("/bids/:bidId/edit", h.EditBid)
	outer.DELETE("/bids/:bidId", h.DeleteBid)

	return h
}

type postBidInput struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Email     string  `json:"email" validate:"omitempty,email,max=200"`
	Phone     string  `json:"phone" validate:"max=40"`
	Address   string  `json:"address" validate:"max=500"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	StartDate string  `json:"startDate" validate:"max=40"`
	Duration  string  `json:"duration" validate:"max=100"`
	Notes     string  `json:"notes" validate:"max=2000"`
}

// /bids/new
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidInput{
		Name: input.Name, Email: input.Email, Phone: input.Phone, Address: input.Address,
		Amount: input.Amount, StartDate: input.StartDate, Duration: input.Duration, Notes: input.Notes,
	}

	bid, err := h.bidService.SubmitBid(c.Request().Context(), model)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, bid)
}

type getBidsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=200"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /bids
func (h *bidRoutesHandler) GetBids(c echo.Context) error {
	input := getBidsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetBids(c.Request().Context(), pg)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, bids)
}

// /bids/:bidId
func (h *bidRoutesHandler) GetBid(c echo.Context) error {
	bid, err := h.bidService.GetBid(c.Request().Context(), c.Param("bidId"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, bid)
}

type setBidStatusInput struct {
	Status       string `json:"status" validate:"required,oneof=pending accepted rejected"`
	AcceptedDate string `json:"acceptedDate" validate:"max=40"`
}

// /bids/:bidId/status
func (h *bidRoutesHandler) SetBidStatus(c echo.Context) error {
	var input setBidStatusInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	bid, err := h.bidService.SetBidStatus(c.Request().Context(), c.Param("bidId"), input.Status, input.AcceptedDate)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, bid)
}

type editBidInput struct {
	Name      *string  `json:"name" validate:"omitempty,max=200"`
	Email     *string  `json:"email" validate:"omitempty,max=200"`
	Phone     *string  `json:"phone" validate:"omitempty,max=40"`
	Address   *string  `json:"address" validate:"omitempty,max=500"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
	StartDate *string  `json:"startDate" validate:"omitempty,max=40"`
	Duration  *string  `json:"duration" validate:"omitempty,max=100"`
	Notes     *string  `json:"notes" validate:"omitempty,max=2000"`
}

// /bids/:bidId/edit
func (h *bidRoutesHandler) EditBid(c echo.Context) error {
	var input editBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.EditBidInput{
		Name: input.Name, Email: input.Email, Phone: input.Phone, Address: input.Address,
		Amount: input.Amount, StartDate: input.StartDate, Duration: input.Duration, Notes: input.Notes,
	}

	bid, err := h.bidService.EditBid(c.Request().Context(), c.Param("bidId"), model)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, bid)
}

// /bids/:bidId
func (h *bidRoutesHandler) DeleteBid(c echo.Context) error {
	if err := h.bidService.DeleteBid(c.Request().Context(), c.Param("bidId")); err != nil {
		return serviceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
