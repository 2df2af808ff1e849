package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest  ErrorCode = "bad_request"
	errCodeNotFound    ErrorCode = "not_found"
	errCodeRateLimited ErrorCode = "rate_limited"
	errCodeConflict    ErrorCode = "conflict"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeUpstreamError ErrorCode = "upstream_error"
	errCodeOverloaded    ErrorCode = "overloaded"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps a domain error to its HTTP representation.
// Anything unrecognized is logged and surfaces as a 500.
func respondDomainError(c *gin.Context, err error) {
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		respondNotFound(c, "Player not found")
	case errors.Is(err, domain.ErrRateLimitExceeded):
		respondWithError(c, http.StatusTooManyRequests, errCodeRateLimited, "Upstream rate limit exhausted, try again later")
	case errors.Is(err, domain.ErrIngestQueueFull):
		respondWithError(c, http.StatusServiceUnavailable, errCodeOverloaded, "Ingestion queue is full, try again later")
	case errors.Is(err, domain.ErrRebuildInProgress):
		respondWithError(c, http.StatusConflict, errCodeConflict, "An aggregate rebuild is already running")
	case errors.As(err, &upstreamErr):
		// an upstream 404 means the riot id or match simply does not exist
		if upstreamErr.StatusCode == http.StatusNotFound {
			respondNotFound(c, "Not found upstream")
			return
		}
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusBadGateway, errCodeUpstreamError, "Upstream request failed")
	default:
		respondInternalError(c, err, "Internal server error", zap.String("path", c.Request.URL.Path))
	}
}
