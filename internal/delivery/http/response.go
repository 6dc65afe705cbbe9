package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"order-review-svc/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

type listResponse[T any] struct {
	Data    []T     `json:"data"`
	Count   int     `json:"count"`
	Average float64 `json:"average,omitempty"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrDecode), errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotEligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. Infrastructure failures are logged
// and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.AbortWithStatusJSON(status, errorResponse{Message: "internal server error"})
		return
	}

	var se *service.Error
	if errors.As(err, &se) {
		rejections.WithLabelValues(se.Code).Inc()
	}
	c.AbortWithStatusJSON(status, errorResponse{Message: err.Error()})
}

// bindJSON decodes the body; shape errors become 400 with a readable message.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			newErrorResponse(c, http.StatusBadRequest, "validation failed: "+humanizeValidationErrors(verrs))
			return false
		}
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return false
	}
	return true
}

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
