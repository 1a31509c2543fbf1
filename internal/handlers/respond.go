package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps application error kinds onto HTTP statuses. Storage
// failures are reported generically; their detail stays in the server log.
func respondError(c *gin.Context, err error) {
	var ve apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrBillNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrOrderClosed),
		errors.Is(err, apperrors.ErrAlreadyBilled),
		errors.Is(err, apperrors.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoItems):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
