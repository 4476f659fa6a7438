package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	chargifydomain "github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

type errorPayload struct {
	Type           string          `json:"type"`
	Message        string          `json:"message"`
	AdditionalInfo json.RawMessage `json:"additional_info,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnknownFunction = errors.New("unknown_function")
	ErrInvalidBody     = &chargifydomain.ArgumentError{Message: "Invalid request body"}
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// mapError turns a service error into a status and body. Caller and
// provider messages are passed through; unexpected failures are not.
func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if errors.Is(err, ErrUnknownFunction) {
		return http.StatusNotFound, errorPayload{
			Type:    "unknown_function",
			Message: "unknown function",
		}
	}

	var apiErr *chargifydomain.APIError
	if errors.As(err, &apiErr) {
		return http.StatusUnprocessableEntity, errorPayload{
			Type:           "api",
			Message:        apiErr.Message,
			AdditionalInfo: apiErr.Payload,
		}
	}

	errType := chargifydomain.ErrorType(err)
	switch errType {
	case "argument":
		return http.StatusBadRequest, errorPayload{Type: errType, Message: err.Error()}
	case "not_found":
		return http.StatusNotFound, errorPayload{Type: errType, Message: err.Error()}
	case "configuration":
		return http.StatusInternalServerError, errorPayload{Type: errType, Message: err.Error()}
	default:
		var httpErr *chargifydomain.HTTPError
		if errors.As(err, &httpErr) {
			return http.StatusBadGateway, errorPayload{Type: errType, Message: httpErr.Error()}
		}
		return http.StatusBadGateway, errorPayload{
			Type:    errType,
			Message: "provider request failed",
		}
	}
}

func classifyErrorForLog(err error) (string, string) {
	if errors.Is(err, ErrUnknownFunction) {
		return "argument", "unknown_function"
	}
	errType := chargifydomain.ErrorType(err)
	var httpErr *chargifydomain.HTTPError
	if errors.As(err, &httpErr) {
		return errType, http.StatusText(httpErr.StatusCode)
	}
	return errType, ""
}
