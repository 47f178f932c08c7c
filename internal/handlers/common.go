package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
)

type ErrorResponse struct {
	Error      string `json:"error" example:"something went wrong"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// respondError maps service errors onto one uniform HTTP convention:
// 400 validation, 403 forbidden, 404 not found, 409 conflict, 502 upstream
// failure with the upstream status and body attached for debuggability.
func respondError(c *gin.Context, err error) {
	var upstream *store.UpstreamError
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrConfessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrSessionNotActive):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAlreadyConfessed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrEmptyConfession):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:      "data store request failed",
			Details:    upstream.Body,
			StatusCode: upstream.StatusCode,
		})
	default:
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream request failed", Details: err.Error()})
	}
}
