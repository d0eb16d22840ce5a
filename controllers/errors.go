package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/services"
	"github.com/yeremiapane/bill-printing-app/utils"
)

// respondServiceError maps service failures to the caller-visible status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrInvalidInput):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		_ = c.Error(err)
		utils.ErrorLogger.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
