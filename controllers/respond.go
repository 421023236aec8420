package controllers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/utils"
)

// respondError maps service errors onto HTTP statuses. Anything without
// an AppError code is treated as an internal failure.
func respondError(c *gin.Context, err error) {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		c.Status(http.StatusRequestTimeout)
		return
	}

	appErr := errors.GetAppError(err)
	if appErr == nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	status := http.StatusBadRequest
	switch appErr.Code {
	case errors.ErrCodeSessionNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeConflict:
		status = http.StatusConflict
	case errors.ErrCodeIO:
		status = http.StatusInternalServerError
	}
	utils.JSONError(c, status, appErr.Message)
}

func isNotFound(err error) bool {
	for _, sentinel := range []error{
		errors.ErrRoomNotFound,
		errors.ErrBookingNotFound,
		errors.ErrCustomerNotFound,
		errors.ErrStaffNotFound,
		errors.ErrSessionNotFound,
	} {
		if stderrors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
