package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blues/adagency/internal/calculator"
	"github.com/blues/adagency/internal/logger"
	"github.com/blues/adagency/internal/logic"
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes {"error": message}.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// handleError maps logic errors to a status code. Unexpected errors are
// logged and hidden from the client.
func handleError(c *gin.Context, err error) {
	switch {
	case logic.IsNotFound(err):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case logic.IsValidation(err), isCalculatorError(err):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}

func isCalculatorError(err error) bool {
	return errors.Is(err, calculator.ErrUnknownService) ||
		errors.Is(err, calculator.ErrUnknownOption) ||
		errors.Is(err, calculator.ErrUnknownExtra) ||
		errors.Is(err, calculator.ErrBadQuantity)
}

// parseID reads a positive uint id; ok is false when the response has been written.
func parseID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
