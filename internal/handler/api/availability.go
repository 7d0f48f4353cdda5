package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Date availability
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param assetId query string false "Asset ID"
// @Success 200 {object} resdto.DateAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/date [get]
func (h *AvailabilityHandler) Date(c *gin.Context) {
	date, err := civil.Parse(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", map[string]string{"date": "must be a date formatted as YYYY-MM-DD"})
		return
	}
	result, err := h.q.IsDateAvailable(c.Request.Context(), date, c.Query("assetId"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateAvailability(result))
}

// @Summary Month availability
// @Tags availability
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param assetId query string false "Asset ID"
// @Success 200 {object} resdto.MonthAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/month [get]
func (h *AvailabilityHandler) Month(c *gin.Context) {
	year, yerr := strconv.Atoi(c.Query("year"))
	month, merr := strconv.Atoi(c.Query("month"))
	if yerr != nil || merr != nil {
		err := yerr
		if err == nil {
			err = merr
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "year and month must be integers", nil)
		return
	}
	result, err := h.q.MonthAvailability(c.Request.Context(), year, time.Month(month), c.Query("assetId"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthAvailability(result))
}
