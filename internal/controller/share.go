package controller

import (
	"net/http"
	"time"

	"job-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type shareRoutesHandler struct {
	shareService service.Share
	validate     *validator.Validate
}

func newShareRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *shareRoutesHandler {
	h := &shareRoutesHandler{shareService: services.Share, validate: v}
	outer.POST("/shares/new", h.PostShare)

	// public paths: the share id is the only authorization
	outer.GET("/shares/:shareId", h.ResolveShare)
	outer.PUT("/shares/:shareId/comment", h.SetShareComment)

	return h
}

type postShareInput struct {
	JobId    string `json:"jobId" validate:"omitempty,uuid"`
	Day      string `json:"day" validate:"omitempty,max=40"`
	TtlHours int    `json:"ttlHours" validate:"required,gte=1,lte=720"`
}

// /shares/new — either jobId (single job) or day (day bucket)
func (h *shareRoutesHandler) PostShare(c echo.Context) error {
	var input postShareInput
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

	if (input.JobId == "") == (input.Day == "") {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Pass exactly one of jobId or day"}); e != nil {
			return e
		}

		return nil
	}

	ttl := time.Duration(input.TtlHours) * time.Hour

	var err error
	var share any
	if input.JobId != "" {
		share, err = h.shareService.CreateShare(c.Request().Context(), input.JobId, ttl)
	} else {
		share, err = h.shareService.CreateDayShare(c.Request().Context(), input.Day, ttl)
	}
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, share)
}

// /shares/:shareId
func (h *shareRoutesHandler) ResolveShare(c echo.Context) error {
	share, err := h.shareService.ResolveShare(c.Request().Context(), c.Param("shareId"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, share)
}

type setCommentInput struct {
	Comment string `json:"comment" validate:"max=2000"`
}

// /shares/:shareId/comment
func (h *shareRoutesHandler) SetShareComment(c echo.Context) error {
	var input setCommentInput
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

	if err := h.shareService.SetShareComment(c.Request().Context(), c.Param("shareId"), input.Comment); err != nil {
		return serviceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
