package api

import (
	"net/http"

	reqdto "bounce-booking/internal/handler/dto/request"
	"bounce-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON aborts with 400 and per-field details when the body does not bind.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var detail any
		if fields := reqdto.FieldErrors(err); fields != nil {
			detail = fields
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
		return false
	}
	return true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
