package handler

import (
	"net/http"

	ierr "fleetadmin/internal/errors"
	"fleetadmin/internal/logger"
	"fleetadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError writes err in the response envelope with the status of its error class.
// Server-side failures are logged, client errors are not.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status := ierr.HTTPStatusFromErr(err)
	if status >= http.StatusInternalServerError {
		log.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"error", err,
		)
	}
	c.JSON(status, response.ErrorWithCode(status, ierr.Code(err), ierr.Hint(err)))
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
}
