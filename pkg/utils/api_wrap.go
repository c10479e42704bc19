package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIError struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "unprocessable request",
	http.StatusInternalServerError: "internal server error",
}

func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}

// RespondSuccess writes payload with "success": true merged in.
func RespondSuccess(c *gin.Context, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}

func RespondError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, APIError{
		Success: false,
		Error:   code,
		Message: StatusMessage(code),
	})
}

// HandleServiceError maps service sentinels onto HTTP statuses.
func HandleServiceError(c *gin.Context, err error) {
	HandleServiceErrorAs(c, err, http.StatusNotFound)
}

// HandleServiceErrorAs is HandleServiceError with a custom status for
// ErrNotFound; some trivia endpoints report unknown ids as 422.
func HandleServiceErrorAs(c *gin.Context, err error, notFoundStatus int) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		RespondError(c, notFoundStatus)
	case errors.Is(err, ErrPageOutOfRange):
		RespondError(c, http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		RespondError(c, http.StatusConflict)
	case errors.Is(err, ErrDatabaseError):
		zap.L().Warn("store failure", zap.String("path", c.FullPath()), zap.Error(err))
		RespondError(c, http.StatusUnprocessableEntity)
	default:
		zap.L().Error("unhandled service error", zap.String("path", c.FullPath()), zap.Error(err))
		RespondError(c, http.StatusInternalServerError)
	}
}
