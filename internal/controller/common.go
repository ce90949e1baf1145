package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"job-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

const (
	defaultLimit  = 50
	defaultOffset = 0
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// serviceError maps the service taxonomy onto HTTP statuses. Every failure
// carries a specific human-readable reason; nothing is swallowed.
func serviceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, service.ErrBidNotFound),
		errors.Is(err, service.ErrJobNotFound),
		errors.Is(err, service.ErrShareNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	if e := c.JSON(status, errorResponse{err.Error()}); e != nil {
		return e
	}

	return err
}

func getAllErrorMessages(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "incorrect input value passed"
	}

	var builder strings.Builder
	for _, fe := range verr {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	s, i := "", int32(0)
	if fe.Type() == reflect.TypeOf(s) {
		return getMessageForString(fe)
	}

	if fe.Type() == reflect.TypeOf(i) || fe.Type() == reflect.TypeOf(0) || fe.Type() == reflect.TypeOf(0.0) {
		return getMessageForNumber(fe)
	}

	return "incorrect value passed"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}
