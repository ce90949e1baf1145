package controller

import (
	"net/http"

	"job-management-api/internal/entity"
	"job-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type jobRoutesHandler struct {
	jobService service.Job
	validate   *validator.Validate
}

func newJobRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *jobRoutesHandler {
	h := &jobRoutesHandler{jobService: services.Job, validate: v}
	outer.POST("/jobs/new", h.PostJob)
	outer.GET("/jobs", h.GetJobs)
	outer.GET("/jobs/value", h.GetCompletedValue)
	outer.GET("/jobs/:jobId", h.GetJob)

	outer.PATCH("/jobs/:jobId/edit", h.EditJob)
	outer.PUT("/jobs/:jobId/complete", h.MarkCompleted)
	outer.PUT("/jobs/:jobId/archive", h.ArchiveJob)
	outer.DELETE("/jobs/:jobId", h.DeleteJob)

	return h
}

type postJobInput struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"omitempty,email,max=200"`
	Phone   string  `json:"phone" validate:"max=40"`
	Address string  `json:"address" validate:"max=500"`
	Date    string  `json:"date" validate:"max=40"`
	Info    string  `json:"info" validate:"max=2000"`
	Price   float64 `json:"price" validate:"gte=0"`
}

// /jobs/new
func (h *jobRoutesHandler) PostJob(c echo.Context) error {
	var input postJobInput
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

	model := &entity.CreateJobInput{
		Name: input.Name, Email: input.Email, Phone: input.Phone, Address: input.Address,
		Date: input.Date, Info: input.Info, Price: input.Price,
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), model)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, job)
}

type getJobsInput struct {
	Limit           int32 `query:"limit" validate:"gte=0,lte=500"`
	Offset          int32 `query:"offset" validate:"gte=0"`
	IncludeArchived bool  `query:"includeArchived"`
}

// /jobs
func (h *jobRoutesHandler) GetJobs(c echo.Context) error {
	input := getJobsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	jobs, err := h.jobService.GetJobs(c.Request().Context(), input.IncludeArchived, pg)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, jobs)
}

type completedValueOutput struct {
	Total float64 `json:"total"`
}

// /jobs/value
func (h *jobRoutesHandler) GetCompletedValue(c echo.Context) error {
	total, err := h.jobService.CompletedJobsValue(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, completedValueOutput{Total: total})
}

// /jobs/:jobId
func (h *jobRoutesHandler) GetJob(c echo.Context) error {
	job, err := h.jobService.GetJob(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, job)
}

type editJobInput struct {
	Name      *string  `json:"name" validate:"omitempty,max=200"`
	Email     *string  `json:"email" validate:"omitempty,max=200"`
	Phone     *string  `json:"phone" validate:"omitempty,max=40"`
	Address   *string  `json:"address" validate:"omitempty,max=500"`
	Date      *string  `json:"date" validate:"omitempty,max=40"`
	Info      *string  `json:"info" validate:"omitempty,max=2000"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
	Completed *bool    `json:"completed"`
	Archived  *bool    `json:"archived"`
}

// /jobs/:jobId/edit
func (h *jobRoutesHandler) EditJob(c echo.Context) error {
	var input editJobInput
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

	model := &entity.EditJobInput{
		Name: input.Name, Email: input.Email, Phone: input.Phone, Address: input.Address,
		Date: input.Date, Info: input.Info, Price: input.Price,
		Completed: input.Completed, Archived: input.Archived,
	}

	job, err := h.jobService.EditJob(c.Request().Context(), c.Param("jobId"), model)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, job)
}

// /jobs/:jobId/complete
func (h *jobRoutesHandler) MarkCompleted(c echo.Context) error {
	job, err := h.jobService.MarkCompleted(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, job)
}

// /jobs/:jobId/archive
func (h *jobRoutesHandler) ArchiveJob(c echo.Context) error {
	job, err := h.jobService.ArchiveJob(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, job)
}

// /jobs/:jobId
func (h *jobRoutesHandler) DeleteJob(c echo.Context) error {
	if err := h.jobService.DeleteJob(c.Request().Context(), c.Param("jobId")); err != nil {
		return serviceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
