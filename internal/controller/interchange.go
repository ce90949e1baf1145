package controller

import (
	"bytes"
	"net/http"

	"job-management-api/internal/csvio"
	"job-management-api/internal/service"

	"github.com/labstack/echo"
)

type interchangeRoutesHandler struct {
	reconcileService service.Reconcile
}

func newInterchangeRoutesHandler(outer *echo.Group, services *service.Services) *interchangeRoutesHandler {
	h := &interchangeRoutesHandler{reconcileService: services.Reconcile}
	outer.POST("/jobs/import", h.ImportJobs)
	outer.GET("/jobs/export", h.ExportJobs)

	return h
}

// /jobs/import?mode=replace|merge
//
// The mode is deliberately required: replace deletes every job missing
// from the upload, so the caller has to say so explicitly.
func (h *interchangeRoutesHandler) ImportJobs(c echo.Context) error {
	mode := c.QueryParam("mode")
	if mode == "" {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Query parameter mode is required: replace or merge"}); e != nil {
			return e
		}

		return nil
	}

	rows, rowErrors, err := csvio.Parse(c.Request().Body)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	summary, err := h.reconcileService.ImportJobs(c.Request().Context(), rows, mode)
	if err != nil {
		return serviceError(c, err)
	}

	summary.RowErrors = rowErrors

	return c.JSON(http.StatusOK, summary)
}

// /jobs/export?includeArchived=true
func (h *interchangeRoutesHandler) ExportJobs(c echo.Context) error {
	includeArchived := c.QueryParam("includeArchived") == "true"

	jobs, err := h.reconcileService.ExportJobs(c.Request().Context(), includeArchived)
	if err != nil {
		return serviceError(c, err)
	}

	var buf bytes.Buffer
	if err := csvio.Write(&buf, jobs); err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="jobs.csv"`)

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
